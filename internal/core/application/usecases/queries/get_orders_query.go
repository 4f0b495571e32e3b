package queries

import (
	"errors"
	"fmt"
	"time"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/pkg/errs"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// View selects which fulfillment queue to list.
type View string

const (
	// ViewAll lists every order still in progress.
	ViewAll View = "all"
	// ViewKitchen lists orders the kitchen can act on plus the PRONTO ones waiting for logistics.
	ViewKitchen View = "kitchen"
	// ViewLogistics lists orders waiting for a delivery route.
	ViewLogistics View = "logistics"
)

// ParseView accepts "all", "kitchen" and "logistics". An empty value means ViewAll.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "":
		return ViewAll, nil
	case ViewAll, ViewKitchen, ViewLogistics:
		return View(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("view", fmt.Errorf("unknown view %q", s))
	}
}

// Statuses returns the order statuses shown in the view.
func (v View) Statuses() []order.Status {
	var keep func(order.Status) bool
	switch v {
	case ViewKitchen:
		keep = func(s order.Status) bool { return s.IsKitchenActionable() || s.AwaitsLogistics() }
	case ViewLogistics:
		keep = order.Status.IsDispatchable
	default:
		keep = func(s order.Status) bool { return !s.IsTerminal() }
	}

	statuses := make([]order.Status, 0)
	for _, s := range order.Statuses() {
		if keep(s) {
			statuses = append(statuses, s)
		}
	}
	return statuses
}

// GetOrdersQuery lists a fulfillment queue sorted by delivery date, earliest first,
// orders without a date last. Urgency is computed against Now.
//
// Example:
//
//	view, err := queries.ParseView(c.QueryParam("view"))
//	if err != nil {
//	    return err
//	}
//	query, err := queries.NewGetOrdersQuery(view, time.Now())
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	view View
	now  time.Time

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(view View, now time.Time) (GetOrdersQuery, error) {
	if _, err := ParseView(string(view)); err != nil {
		return GetOrdersQuery{}, err
	}
	if view == "" {
		view = ViewAll
	}
	if now.IsZero() {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("now")
	}

	return GetOrdersQuery{
		view:  view,
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) View() View {
	return q.view
}

func (q GetOrdersQuery) Now() time.Time {
	return q.now
}

// GetOrdersQueryResponse is one order in a fulfillment queue.
type GetOrdersQueryResponse struct {
	ID                  kernel.UUID
	ClienteNome         string
	DataEntrega         *time.Time
	Status              order.Status
	Urgency             order.Urgency
	ValorTotalVenda     decimal.Decimal
	RouteID             *kernel.UUID
	CustoEntregaRateado *decimal.Decimal
	CreatedAt           time.Time
	Items               []GetOrdersQueryItem
}

type GetOrdersQueryItem struct {
	ProductID          kernel.UUID
	Sabor              string
	Quantity           int
	PrecoVendaUnitario decimal.Decimal
}
