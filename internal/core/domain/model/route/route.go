package route

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/errs"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDeliveryRouteIsNotConstructed is returned for a route not built via NewDeliveryRoute.
var ErrDeliveryRouteIsNotConstructed = errors.New("DeliveryRoute must be created via NewDeliveryRoute constructor")

// DeliveryRoute is an immutable record of one dispatch.
type DeliveryRoute struct {
	id             kernel.UUID
	motoboyNome    string
	custoTotal     decimal.Decimal
	orderIDs       []kernel.UUID
	custoPorPedido decimal.Decimal
	createdAt      time.Time
	guard          guard.ConstructorGuard
}

// ValidateRequest checks the route input without building it. Every failure is an
// InvalidRouteError wrapping the underlying validation error.
func ValidateRequest(motoboyNome string, custoTotal decimal.Decimal, orderIDs []kernel.UUID) error {
	if strings.TrimSpace(motoboyNome) == "" {
		return errs.NewInvalidRouteErrorWithCause("motoboy is required", errs.NewValueIsRequiredError("motoboy_nome"))
	}
	if err := kernel.ValidatePositiveAmount("custo_total", custoTotal); err != nil {
		return errs.NewInvalidRouteErrorWithCause("cost must be a positive amount in cents", err)
	}
	if len(orderIDs) == 0 {
		return errs.NewInvalidRouteErrorWithCause("no orders selected", errs.NewValueIsRequiredError("pedidos_ids"))
	}

	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	for i, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return errs.NewInvalidRouteErrorWithCause(
				"order id is invalid", errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("pedidos_ids[%d]", i), err))
		}
		if _, ok := seen[id]; ok {
			return errs.NewInvalidRouteOrderError(id.String(), "is selected more than once")
		}
		seen[id] = struct{}{}
	}
	return nil
}

// NewDeliveryRoute builds a route and computes the per-order share:
// custoTotal divided by the number of orders, rounded to cents with banker's rounding.
//
// It does not look at the orders themselves; services.RouteAllocator checks that every
// member is PRONTO and dispatches them.
//
// Parameters:
//   - id: Unique identifier for the route (must be valid UUID)
//   - motoboyNome: Courier name, must not be blank
//   - custoTotal: Total delivery cost, positive and storable in cents
//   - orderIDs: Member orders, at least one and no duplicates; the order is kept
//
// Example:
//
//	r, err := route.NewDeliveryRoute(kernel.NewUUID(), "Joao", decimal.RequireFromString("10.00"), ids)
//	if err != nil {
//	    // InvalidRouteError wrapping the validation failure
//	}
//	r.CustoPorPedido() // 3.33 for three orders
func NewDeliveryRoute(
	id kernel.UUID,
	motoboyNome string,
	custoTotal decimal.Decimal,
	orderIDs []kernel.UUID,
) (*DeliveryRoute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateRequest(motoboyNome, custoTotal, orderIDs); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, len(orderIDs))
	copy(ids, orderIDs)

	return &DeliveryRoute{
		id:             id,
		motoboyNome:    strings.TrimSpace(motoboyNome),
		custoTotal:     custoTotal,
		orderIDs:       ids,
		custoPorPedido: Share(custoTotal, len(ids)),
		createdAt:      time.Now().UTC(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryRoute rebuilds a stored route. The stored share is trusted.
func RestoreDeliveryRoute(
	id kernel.UUID,
	motoboyNome string,
	custoTotal decimal.Decimal,
	orderIDs []kernel.UUID,
	custoPorPedido decimal.Decimal,
	createdAt time.Time,
) (*DeliveryRoute, error) {
	r, err := NewDeliveryRoute(id, motoboyNome, custoTotal, orderIDs)
	if err != nil {
		return nil, err
	}
	r.custoPorPedido = custoPorPedido
	r.createdAt = createdAt
	return r, nil
}

// Share splits total evenly over n orders, rounded to cents.
func Share(total decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return kernel.RoundCents(total.Div(decimal.NewFromInt(int64(n))))
}

func (r *DeliveryRoute) Validate() error {
	if r == nil {
		return ErrDeliveryRouteIsNotConstructed
	}
	return r.guard.Validate(ErrDeliveryRouteIsNotConstructed)
}

func (r *DeliveryRoute) ID() kernel.UUID {
	return r.id
}

func (r *DeliveryRoute) MotoboyNome() string {
	return r.motoboyNome
}

func (r *DeliveryRoute) CustoTotal() decimal.Decimal {
	return r.custoTotal
}

// OrderIDs returns a copy of the member ids in selection order.
func (r *DeliveryRoute) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(r.orderIDs))
	copy(ids, r.orderIDs)
	return ids
}

func (r *DeliveryRoute) CustoPorPedido() decimal.Decimal {
	return r.custoPorPedido
}

func (r *DeliveryRoute) CreatedAt() time.Time {
	return r.createdAt
}
