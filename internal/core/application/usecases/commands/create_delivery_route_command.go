package commands

import (
	"errors"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/route"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateDeliveryRouteCommandIsNotConstructed = errors.New(
	"CreateDeliveryRouteCommand must be created via NewCreateDeliveryRouteCommand constructor",
)

// CreateDeliveryRouteCommand dispatches a batch of ready orders with one courier.
// Input errors are reported as errs.InvalidRouteError.
type CreateDeliveryRouteCommand struct { //nolint:recvcheck //using for validation
	routeID     kernel.UUID
	motoboyNome string
	custoTotal  decimal.Decimal
	orderIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateDeliveryRouteCommand(
	routeID kernel.UUID,
	motoboyNome string,
	custoTotal decimal.Decimal,
	orderIDs []kernel.UUID,
) (CreateDeliveryRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return CreateDeliveryRouteCommand{}, err
	}
	if err := route.ValidateRequest(motoboyNome, custoTotal, orderIDs); err != nil {
		return CreateDeliveryRouteCommand{}, err
	}

	ids := make([]kernel.UUID, len(orderIDs))
	copy(ids, orderIDs)

	return CreateDeliveryRouteCommand{
		routeID:     routeID,
		motoboyNome: motoboyNome,
		custoTotal:  custoTotal,
		orderIDs:    ids,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryRouteCommandIsNotConstructed)
}

func (c CreateDeliveryRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c CreateDeliveryRouteCommand) MotoboyNome() string {
	return c.motoboyNome
}

func (c CreateDeliveryRouteCommand) CustoTotal() decimal.Decimal {
	return c.custoTotal
}

// OrderIDs returns a copy in the order they were selected.
func (c CreateDeliveryRouteCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}
