package commands

import (
	"context"

	"cookieadmin/internal/core/domain/model/route"
	"cookieadmin/internal/core/domain/services"
	"cookieadmin/internal/pkg/errs"
)

// CreateDeliveryRouteCommandHandler creates a route and moves all its orders to EM_ROTA
// in one transaction. The orders are row-locked while they are checked, and each is
// written with a version check, so a concurrent change makes the whole route fail.
type CreateDeliveryRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	allocator  services.RouteAllocator
}

func NewCreateDeliveryRouteCommandHandler(
	uowFactory RouteUoWFactory,
	allocator services.RouteAllocator,
) CreateDeliveryRouteCommandHandler {
	return CreateDeliveryRouteCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

func (h CreateDeliveryRouteCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryRouteCommand,
) (*route.DeliveryRoute, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ids := cmd.OrderIDs()
	orders, err := orderRepo.GetManyForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(orders) != len(ids) {
		found := make(map[string]struct{}, len(orders))
		for _, o := range orders {
			found[o.ID().String()] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id.String()]; !ok {
				return nil, errs.NewInvalidRouteOrderError(id.String(), "does not exist")
			}
		}
	}

	r, err := h.allocator.Allocate(cmd.RouteID(), cmd.MotoboyNome(), cmd.CustoTotal(), orders)
	if err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
