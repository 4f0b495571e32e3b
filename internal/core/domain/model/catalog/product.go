package catalog

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/errs"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not built via NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrSaborIsRequired is returned for a blank flavor name.
	ErrSaborIsRequired = errs.NewValueIsRequiredError("sabor")
)

// Product is a cookie offered for sale.
//
// Invariants:
//   - sabor is non-blank and stored in normalized form (see NormalizeSabor)
//   - precoVenda and custoProducao are never negative
type Product struct {
	id            kernel.UUID
	sabor         string
	descricao     string
	precoVenda    decimal.Decimal
	custoProducao decimal.Decimal
	active        bool
	guard         guard.ConstructorGuard
}

// NewProduct creates an active product. All validation errors are joined.
//
// The sabor is normalized with NormalizeSabor, so "  red velvet " is stored as
// "Red Velvet". Uniqueness of the sabor is checked by the command handler against
// the repository, not here.
//
// Example:
//
//	p, err := catalog.NewProduct(kernel.NewUUID(), "red velvet", "",
//	    decimal.RequireFromString("12.50"), decimal.RequireFromString("4.00"))
//	if err != nil {
//	    // Handle validation error
//	}
//	p.Sabor() // "Red Velvet"
func NewProduct(
	id kernel.UUID,
	sabor, descricao string,
	precoVenda, custoProducao decimal.Decimal,
) (*Product, error) {
	p := &Product{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSabor(sabor),
		p.setPrices(precoVenda, custoProducao),
	); err != nil {
		return nil, err
	}
	p.descricao = strings.TrimSpace(descricao)

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(
	id kernel.UUID,
	sabor, descricao string,
	precoVenda, custoProducao decimal.Decimal,
	active bool,
) (*Product, error) {
	p, err := NewProduct(id, sabor, descricao, precoVenda, custoProducao)
	if err != nil {
		return nil, err
	}
	p.active = active
	return p, nil
}

// Update replaces the editable fields. The product is left untouched on error.
func (p *Product) Update(sabor, descricao string, precoVenda, custoProducao decimal.Decimal) error {
	updated := *p
	if err := errors.Join(
		updated.setSabor(sabor),
		updated.setPrices(precoVenda, custoProducao),
	); err != nil {
		return err
	}
	updated.descricao = strings.TrimSpace(descricao)
	*p = updated
	return nil
}

// Validate ensures the product was created through its constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Sabor() string {
	return p.sabor
}

func (p *Product) Descricao() string {
	return p.descricao
}

func (p *Product) PrecoVenda() decimal.Decimal {
	return p.precoVenda
}

func (p *Product) CustoProducao() decimal.Decimal {
	return p.custoProducao
}

// Active reports whether the product can be ordered.
func (p *Product) Active() bool {
	return p.active
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSabor(sabor string) error {
	normalized := NormalizeSabor(sabor)
	if normalized == "" {
		return ErrSaborIsRequired
	}
	p.sabor = normalized
	return nil
}

func (p *Product) setPrices(precoVenda, custoProducao decimal.Decimal) error {
	if err := errors.Join(
		kernel.ValidateNonNegativeAmount("preco_venda", precoVenda),
		kernel.ValidateNonNegativeAmount("custo_producao", custoProducao),
	); err != nil {
		return err
	}
	p.precoVenda = precoVenda
	p.custoProducao = custoProducao
	return nil
}

// NormalizeSabor collapses whitespace and title-cases every word,
// so "  red   velvet " becomes "Red Velvet".
func NormalizeSabor(sabor string) string {
	words := strings.Fields(sabor)
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
