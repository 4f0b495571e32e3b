package commands

import (
	"context"

	"cookieadmin/internal/core/domain/model/order"
)

// ReportLossCommandHandler moves a non-terminal order to EXTRAVIADO and returns the
// recorded loss. Terminal orders fail with errs.IllegalTransitionError.
type ReportLossCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReportLossCommandHandler(uowFactory OrderUoWFactory) ReportLossCommandHandler {
	return ReportLossCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReportLossCommandHandler) Handle(ctx context.Context, cmd ReportLossCommand) (order.Loss, error) {
	if err := cmd.Validate(); err != nil {
		return order.Loss{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Loss{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Loss{}, err
	}

	loss, err := o.ReportLoss(cmd.Motivo())
	if err != nil {
		return order.Loss{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Loss{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Loss{}, err
	}

	return loss, nil
}
