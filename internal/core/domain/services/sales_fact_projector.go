package services

import (
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// SalesFact is the per-item financial picture of an order, published for reporting.
type SalesFact struct {
	ProductID      kernel.UUID
	Sabor          string
	Quantity       int
	Receita        decimal.Decimal
	Custo          decimal.Decimal
	CustoLogistico decimal.Decimal
	LucroLiquido   decimal.Decimal
}

// SalesFactProjector spreads an order's delivery share over its items in proportion
// to units and derives the net profit of each line.
type SalesFactProjector struct{}

func NewSalesFactProjector() SalesFactProjector {
	return SalesFactProjector{}
}

// Project returns one fact per item. Orders without a route carry no logistics cost.
// A lost order earns no revenue: every line is reported at its production cost.
func (p SalesFactProjector) Project(o *order.Order) []SalesFact {
	items := o.Items()
	facts := make([]SalesFact, 0, len(items))

	share := decimal.Zero
	if o.CustoEntregaRateado() != nil {
		share = *o.CustoEntregaRateado()
	}
	units := decimal.NewFromInt(int64(o.TotalUnits()))
	lost := o.Status() == order.Extraviado

	for _, it := range items {
		receita := it.Subtotal()
		if lost {
			receita = decimal.Zero
		}
		custo := it.ProductionCost()
		logistico := decimal.Zero
		if units.IsPositive() {
			logistico = kernel.RoundCents(share.Mul(decimal.NewFromInt(int64(it.Quantity()))).Div(units))
		}

		facts = append(facts, SalesFact{
			ProductID:      it.ProductID(),
			Sabor:          it.Sabor(),
			Quantity:       it.Quantity(),
			Receita:        receita,
			Custo:          custo,
			CustoLogistico: logistico,
			LucroLiquido:   receita.Sub(custo).Sub(logistico),
		})
	}
	return facts
}
