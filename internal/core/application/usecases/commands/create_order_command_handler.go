package commands

import (
	"context"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/pkg/errs"
)

// CreateOrderCommandHandler places an order in RECEBIDO, snapshotting the current
// sale price and production cost of every product.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ObjectNotFoundError naming the first unknown product.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	checkout := cmd.Checkout()
	ids := make([]kernel.UUID, 0, len(checkout.Lines))
	for _, line := range checkout.Lines {
		ids = append(ids, line.ProductID)
	}

	products, err := uow.ProductRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	prices := catalog.NewCatalog(products...)

	items := make([]order.Item, 0, len(checkout.Lines))
	for _, line := range checkout.Lines {
		product, ok := prices.Product(line.ProductID)
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", line.ProductID.String())
		}
		item, itemErr := order.ItemFromProduct(product, line.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(cmd.OrderID(), checkout.ClienteNome, checkout.DataEntrega, items)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
