package commands

import (
	"errors"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a cookie to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	sabor         string
	descricao     string
	precoVenda    decimal.Decimal
	custoProducao decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	sabor, descricao string,
	precoVenda, custoProducao decimal.Decimal,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		descricao: descricao,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setSabor(sabor),
		cmd.setPrices(precoVenda, custoProducao),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Sabor is already normalized.
func (c CreateProductCommand) Sabor() string {
	return c.sabor
}

func (c CreateProductCommand) Descricao() string {
	return c.descricao
}

func (c CreateProductCommand) PrecoVenda() decimal.Decimal {
	return c.precoVenda
}

func (c CreateProductCommand) CustoProducao() decimal.Decimal {
	return c.custoProducao
}

func (c *CreateProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *CreateProductCommand) setSabor(sabor string) error {
	normalized := catalog.NormalizeSabor(sabor)
	if normalized == "" {
		return catalog.ErrSaborIsRequired
	}
	c.sabor = normalized
	return nil
}

func (c *CreateProductCommand) setPrices(precoVenda, custoProducao decimal.Decimal) error {
	if err := errors.Join(
		kernel.ValidateNonNegativeAmount("preco_venda", precoVenda),
		kernel.ValidateNonNegativeAmount("custo_producao", custoProducao),
	); err != nil {
		return err
	}
	c.precoVenda = precoVenda
	c.custoProducao = custoProducao
	return nil
}
