package ports

import (
	"context"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error
	Update(ctx context.Context, product *catalog.Product) error

	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetBySabor matches the normalized flavor name. It returns (nil, nil) when absent.
	GetBySabor(ctx context.Context, sabor string) (*catalog.Product, error)

	// GetMany returns the known products among ids.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
}
