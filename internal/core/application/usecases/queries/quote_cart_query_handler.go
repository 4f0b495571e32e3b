package queries

import (
	"context"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type QuoteCartQueryHandler struct {
	db *gorm.DB
}

func NewQuoteCartQueryHandler(db *gorm.DB) QuoteCartQueryHandler {
	return QuoteCartQueryHandler{db: db}
}

// Handle prices active and inactive products alike; an item already in a cart keeps
// its price until checkout rejects it.
func (h QuoteCartQueryHandler) Handle(ctx context.Context, query QuoteCartQuery) (QuoteCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteCartQueryResponse{}, err
	}

	c := query.Cart()
	resp := QuoteCartQueryResponse{Total: decimal.Zero, Lines: make([]QuoteCartQueryLine, 0)}
	if c.IsEmpty() {
		return resp, nil
	}

	prices, err := h.loadCatalog(ctx, c.ProductIDs())
	if err != nil {
		return QuoteCartQueryResponse{}, err
	}

	for _, line := range c.Lines() {
		quoted := QuoteCartQueryLine{ProductID: line.ProductID, Quantity: line.Quantity, Subtotal: decimal.Zero}
		if p, ok := prices.Product(line.ProductID); ok {
			quoted.Known = true
			quoted.Sabor = p.Sabor()
			quoted.PrecoVenda = p.PrecoVenda()
			quoted.Subtotal = p.PrecoVenda().Mul(decimal.NewFromInt(int64(line.Quantity)))
		}
		resp.Lines = append(resp.Lines, quoted)
	}
	resp.Total = c.Total(prices)

	return resp, nil
}

func (h QuoteCartQueryHandler) loadCatalog(ctx context.Context, ids []kernel.UUID) (catalog.Catalog, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sabor,
			descricao,
			preco_venda,
			custo_producao,
			active
		FROM products
		WHERE id IN ?
	`, raw).Rows()
	if err != nil {
		return catalog.Catalog{}, err
	}
	defer rows.Close()

	products := make([]*catalog.Product, 0, len(ids))
	for rows.Next() {
		var (
			id               uuid.UUID
			sabor, descricao string
			preco, custo     decimal.Decimal
			active           bool
		)
		if err = rows.Scan(&id, &sabor, &descricao, &preco, &custo, &active); err != nil {
			return catalog.Catalog{}, err
		}
		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return catalog.Catalog{}, idErr
		}
		p, restoreErr := catalog.RestoreProduct(productID, sabor, descricao, preco, custo, active)
		if restoreErr != nil {
			return catalog.Catalog{}, restoreErr
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return catalog.Catalog{}, err
	}

	return catalog.NewCatalog(products...), nil
}
