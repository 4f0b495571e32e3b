package services

import (
	"fmt"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/core/domain/model/route"
	"cookieadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RouteAllocator groups ready orders into a delivery route and splits its cost.
//
// Allocation is all or nothing: every order is checked before any of them is touched,
// so a rejected route leaves all orders as they were.
//
//	allocator := services.NewRouteAllocator()
//	r, err := allocator.Allocate(kernel.NewUUID(), "Joao", decimal.NewFromInt(25), orders)
//	if errors.Is(err, errs.ErrInvalidRoute) {
//	    // nothing was dispatched
//	}
type RouteAllocator struct{}

func NewRouteAllocator() RouteAllocator {
	return RouteAllocator{}
}

// Allocate builds the route for orders and moves each of them to EM_ROTA with
// custoPorPedido as its delivery share. Orders are dispatched in the given order.
func (a RouteAllocator) Allocate(
	routeID kernel.UUID,
	motoboyNome string,
	custoTotal decimal.Decimal,
	orders []*order.Order,
) (*route.DeliveryRoute, error) {
	ids := make([]kernel.UUID, 0, len(orders))
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, errs.NewInvalidRouteErrorWithCause(fmt.Sprintf("order at position %d is invalid", i), err)
		}
		ids = append(ids, o.ID())
	}

	r, err := route.NewDeliveryRoute(routeID, motoboyNome, custoTotal, ids)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err := o.Status().ValidateDispatch(); err != nil {
			return nil, errs.NewInvalidRouteOrderError(
				o.ID().String(), fmt.Sprintf("is %s, only PRONTO orders can be dispatched", o.Status()))
		}
	}

	for _, o := range orders {
		if err := o.Dispatch(r.ID(), r.CustoPorPedido()); err != nil {
			return nil, err
		}
	}

	return r, nil
}
