package commands

import (
	"context"
	"fmt"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/pkg/errs"
)

type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*catalog.Product, error) {
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

	product, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if product.Sabor() != cmd.Sabor() {
		clash, lookupErr := productRepo.GetBySabor(ctx, cmd.Sabor())
		if lookupErr != nil {
			return nil, lookupErr
		}
		if clash != nil && !clash.ID().IsEqual(product.ID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("sabor", fmt.Errorf("%s already exists", cmd.Sabor()))
		}
	}

	if err = product.Update(cmd.Sabor(), cmd.Descricao(), cmd.PrecoVenda(), cmd.CustoProducao()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}
