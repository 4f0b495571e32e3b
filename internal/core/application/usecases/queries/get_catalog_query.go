package queries

import (
	"errors"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery lists the products available for sale, sorted by flavor.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

type GetCatalogQueryResponse struct {
	ID            kernel.UUID
	Sabor         string
	Descricao     string
	PrecoVenda    decimal.Decimal
	CustoProducao decimal.Decimal
}
