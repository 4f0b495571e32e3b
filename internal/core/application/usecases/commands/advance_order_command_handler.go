package commands

import (
	"context"

	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/pkg/errs"
)

// AdvanceOrderCommandHandler performs the kitchen and delivery steps:
// RECEBIDO -> EM_PREPARO -> PRONTO and EM_ROTA -> CONCLUIDO.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the new status. It is not idempotent: a retried request advances again
// unless it carries the expected status.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	if expected := cmd.ExpectedStatus(); expected != nil && *expected != o.Status() {
		return order.Unknown, errs.NewConflictError("order", o.ID().String())
	}

	next, err := o.Advance()
	if err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return next, nil
}
