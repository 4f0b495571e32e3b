package queries

import (
	"context"

	"cookieadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCatalogQueryHandler struct {
	db *gorm.DB
}

func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sabor,
			descricao,
			preco_venda,
			custo_producao
		FROM products
		WHERE active
		ORDER BY sabor
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetCatalogQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetCatalogQueryResponse
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &resp.Sabor, &resp.Descricao, &resp.PrecoVenda, &resp.CustoProducao); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
