package commands

import (
	"errors"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces the editable fields of a product. Orders already
// placed keep the prices they were created with.
type UpdateProductCommand struct {
	fields CreateProductCommand
	guard  guard.ConstructorGuard
}

func NewUpdateProductCommand(
	productID kernel.UUID,
	sabor, descricao string,
	precoVenda, custoProducao decimal.Decimal,
) (UpdateProductCommand, error) {
	fields, err := NewCreateProductCommand(productID, sabor, descricao, precoVenda, custoProducao)
	if err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.fields.ProductID()
}

func (c UpdateProductCommand) Sabor() string {
	return c.fields.Sabor()
}

func (c UpdateProductCommand) Descricao() string {
	return c.fields.Descricao()
}

func (c UpdateProductCommand) PrecoVenda() decimal.Decimal {
	return c.fields.PrecoVenda()
}

func (c UpdateProductCommand) CustoProducao() decimal.Decimal {
	return c.fields.CustoProducao()
}
