package order

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

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned for an order without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("itens")
)

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - clienteNome is non-blank and there is at least one item
//   - status only changes through Advance, Dispatch and ReportLoss
//   - routeID and custoEntregaRateado are set exactly when the order joined a route
//   - loss is set exactly when status is EXTRAVIADO
//   - version starts at 1 and grows by one per persisted change
type Order struct {
	id                  kernel.UUID
	clienteNome         string
	dataEntrega         *time.Time
	status              Status
	items               []Item
	routeID             *kernel.UUID
	custoEntregaRateado *decimal.Decimal
	loss                *Loss
	version             int
	createdAt           time.Time
	completedAt         *time.Time
	guard               guard.ConstructorGuard
}

// State is the full persisted form of an order, used by RestoreOrder.
type State struct {
	ID                  kernel.UUID
	ClienteNome         string
	DataEntrega         *time.Time
	Status              Status
	Items               []Item
	RouteID             *kernel.UUID
	CustoEntregaRateado *decimal.Decimal
	Loss                *Loss
	Version             int
	CreatedAt           time.Time
	CompletedAt         *time.Time
}

// NewOrder places an order in RECEBIDO with version 1. It is the only way to create
// a new Order; orders loaded from storage go through RestoreOrder.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - clienteNome: Customer name, trimmed, must not be blank
//   - dataEntrega: Requested delivery time, nil when the customer gave none
//   - items: Snapshotted lines, at least one, one line per product
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Every validation failure joined with errors.Join
//
// Example:
//
//	item, err := order.ItemFromProduct(product, 2)
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(kernel.NewUUID(), "Ana", &entrega, []order.Item{item})
//	if err != nil {
//	    // Handle validation error
//	}
//	o.ValorTotalVenda() // 2 x product.PrecoVenda()
func NewOrder(id kernel.UUID, clienteNome string, dataEntrega *time.Time, items []Item) (*Order, error) {
	o := &Order{
		status:    Recebido,
		version:   1,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClienteNome(clienteNome),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	o.dataEntrega = dataEntrega

	return o, nil
}

// RestoreOrder rebuilds an order from storage and checks that its state is consistent.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		dataEntrega:         s.DataEntrega,
		status:              s.Status,
		routeID:             s.RouteID,
		custoEntregaRateado: s.CustoEntregaRateado,
		loss:                s.Loss,
		version:             s.Version,
		createdAt:           s.CreatedAt,
		completedAt:         s.CompletedAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setClienteNome(s.ClienteNome),
		o.setItems(s.Items),
		s.Status.Validate(),
		validateVersion(s.Version),
		validateRouteState(s.Status, s.RouteID, s.CustoEntregaRateado),
		validateLossState(s.Status, s.Loss),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClienteNome() string {
	return o.clienteNome
}

// DataEntrega is the promised delivery time, nil when none was given.
func (o *Order) DataEntrega() *time.Time {
	return o.dataEntrega
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// RouteID is the delivery route the order joined, nil before dispatch.
func (o *Order) RouteID() *kernel.UUID {
	return o.routeID
}

// CustoEntregaRateado is the order's share of its route cost, nil before dispatch.
func (o *Order) CustoEntregaRateado() *decimal.Decimal {
	return o.custoEntregaRateado
}

// Loss is set once the order was reported lost.
func (o *Order) Loss() *Loss {
	return o.loss
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// ValorTotalVenda is the sum of item subtotals at the snapshotted prices.
func (o *Order) ValorTotalVenda() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// CustoProducaoTotal is the sum of item production costs.
func (o *Order) CustoProducaoTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.ProductionCost())
	}
	return total
}

// TotalUnits counts cookies across all items.
func (o *Order) TotalUnits() int {
	units := 0
	for _, it := range o.items {
		units += it.quantity
	}
	return units
}

// Urgency classifies the delivery date against now.
func (o *Order) Urgency(now time.Time) Urgency {
	return ClassifyUrgency(o.dataEntrega, now)
}

// Advance performs the kitchen/delivery step and returns the new status.
// Reaching CONCLUIDO stamps completedAt. Calling it twice advances twice.
//
// Example:
//
//	next, err := o.Advance() // RECEBIDO -> EM_PREPARO
//	if err != nil {
//	    // IllegalTransitionError: PRONTO and terminal orders do not advance
//	}
func (o *Order) Advance() (Status, error) {
	next, err := o.status.Advance()
	if err != nil {
		return Unknown, err
	}

	o.status = next
	if next == Concluido {
		completedAt := time.Now().UTC()
		o.completedAt = &completedAt
	}
	return next, nil
}

// Dispatch puts a PRONTO order on a delivery route with its share of the route cost.
func (o *Order) Dispatch(routeID kernel.UUID, custoEntregaRateado decimal.Decimal) error {
	if err := errors.Join(
		routeID.Validate(),
		kernel.ValidateNonNegativeAmount("custo_entrega_rateado", custoEntregaRateado),
	); err != nil {
		return err
	}

	next, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = next
	o.routeID = &routeID
	o.custoEntregaRateado = &custoEntregaRateado
	return nil
}

// ReportLoss moves a non-terminal order to EXTRAVIADO and records the production cost lost.
// A blank reason is a validation error; CONCLUIDO and EXTRAVIADO orders return
// IllegalTransitionError and stay unchanged.
//
// Example:
//
//	loss, err := o.ReportLoss("caiu da moto")
//	if err != nil {
//	    return err
//	}
//	loss.PrejuizoTotal() // sum of quantity x custoProducaoUnitario
func (o *Order) ReportLoss(reason string) (Loss, error) {
	if err := validateLossReason(reason); err != nil {
		return Loss{}, err
	}

	next, err := o.status.ReportLoss()
	if err != nil {
		return Loss{}, err
	}

	loss := Loss{
		reason:        strings.TrimSpace(reason),
		reportedAt:    time.Now().UTC(),
		prejuizoTotal: o.CustoProducaoTotal(),
	}
	o.status = next
	o.loss = &loss
	return loss, nil
}

// CommitVersion records that the current state was persisted. Repositories call it
// after a successful versioned write.
func (o *Order) CommitVersion() {
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClienteNome(clienteNome string) error {
	clienteNome = strings.TrimSpace(clienteNome)
	if clienteNome == "" {
		return errs.NewValueIsRequiredError("cliente_nome")
	}
	o.clienteNome = clienteNome
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
		if _, ok := seen[it.productID]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("itens[%d].product_id", i),
				fmt.Errorf("product %s is listed more than once", it.productID),
			)
		}
		seen[it.productID] = struct{}{}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func validateVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}
	return nil
}

func validateRouteState(status Status, routeID *kernel.UUID, share *decimal.Decimal) error {
	onRoute := routeID != nil
	if onRoute != (share != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"route_id", errors.New("route and delivery share must be set together"))
	}

	switch status {
	case EmRota, Concluido:
		if !onRoute {
			return errs.NewValueIsInvalidErrorWithCause(
				"status", fmt.Errorf("%s is not a valid status without a route", status))
		}
	case Recebido, EmPreparo, Pronto:
		if onRoute {
			return errs.NewValueIsInvalidErrorWithCause(
				"status", fmt.Errorf("%s is not a valid status with a route", status))
		}
	case Extraviado, Unknown:
	}
	return nil
}

func validateLossState(status Status, loss *Loss) error {
	if status == Extraviado && loss == nil {
		return errs.NewValueIsInvalidErrorWithCause("status", errors.New("EXTRAVIADO requires a loss record"))
	}
	if status != Extraviado && loss != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status with a loss record", status))
	}
	return nil
}
