package commands

import (
	"context"
	"fmt"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/pkg/errs"
)

// CreateProductCommandHandler registers a new product. Flavors are unique.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*catalog.Product, error) {
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

	productRepo := uow.ProductRepository()

	existing, err := productRepo.GetBySabor(ctx, cmd.Sabor())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("sabor", fmt.Errorf("%s already exists", cmd.Sabor()))
	}

	product, err := catalog.NewProduct(cmd.ProductID(), cmd.Sabor(), cmd.Descricao(), cmd.PrecoVenda(), cmd.CustoProducao())
	if err != nil {
		return nil, err
	}

	if err = productRepo.Add(ctx, product); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}
