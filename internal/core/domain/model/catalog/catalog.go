package catalog

import "cookieadmin/internal/core/domain/model/kernel"

// Catalog is a read-only index of products by id.
type Catalog struct {
	products map[kernel.UUID]*Product
}

// NewCatalog indexes the given products. Nil entries are skipped; a later
// product with the same id replaces an earlier one.
func NewCatalog(products ...*Product) Catalog {
	index := make(map[kernel.UUID]*Product, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		index[p.ID()] = p
	}
	return Catalog{products: index}
}

// Product looks up a product by id.
func (c Catalog) Product(id kernel.UUID) (*Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Len returns the number of indexed products.
func (c Catalog) Len() int {
	return len(c.products)
}
