package order

import (
	"errors"
	"fmt"
	"strings"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/errs"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned for an Item not built via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line with prices frozen at order creation.
type Item struct {
	productID             kernel.UUID
	sabor                 string
	quantity              int
	precoVendaUnitario    decimal.Decimal
	custoProducaoUnitario decimal.Decimal
	guard                 guard.ConstructorGuard
}

func NewItem(
	productID kernel.UUID,
	sabor string,
	quantity int,
	precoVendaUnitario, custoProducaoUnitario decimal.Decimal,
) (Item, error) {
	var problems []error
	if err := productID.Validate(); err != nil {
		problems = append(problems, err)
	}
	sabor = strings.TrimSpace(sabor)
	if sabor == "" {
		problems = append(problems, errs.NewValueIsRequiredError("sabor"))
	}
	if quantity <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	problems = append(problems,
		kernel.ValidateNonNegativeAmount("preco_venda_unitario", precoVendaUnitario),
		kernel.ValidateNonNegativeAmount("custo_producao_unitario", custoProducaoUnitario),
	)
	if err := errors.Join(problems...); err != nil {
		return Item{}, err
	}

	return Item{
		productID:             productID,
		sabor:                 sabor,
		quantity:              quantity,
		precoVendaUnitario:    precoVendaUnitario,
		custoProducaoUnitario: custoProducaoUnitario,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// ItemFromProduct snapshots the current prices of p. Inactive products cannot be ordered.
func ItemFromProduct(p *catalog.Product, quantity int) (Item, error) {
	if err := p.Validate(); err != nil {
		return Item{}, err
	}
	if !p.Active() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"product_id", fmt.Errorf("product %s is not available", p.ID()))
	}
	return NewItem(p.ID(), p.Sabor(), quantity, p.PrecoVenda(), p.CustoProducao())
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Sabor() string {
	return i.sabor
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) PrecoVendaUnitario() decimal.Decimal {
	return i.precoVendaUnitario
}

func (i Item) CustoProducaoUnitario() decimal.Decimal {
	return i.custoProducaoUnitario
}

// Subtotal is quantity times the unit sale price.
func (i Item) Subtotal() decimal.Decimal {
	return i.precoVendaUnitario.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// ProductionCost is quantity times the unit production cost.
func (i Item) ProductionCost() decimal.Decimal {
	return i.custoProducaoUnitario.Mul(decimal.NewFromInt(int64(i.quantity)))
}
