package cart

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/errs"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// PriceList resolves products for pricing. catalog.Catalog satisfies it.
type PriceList interface {
	Product(id kernel.UUID) (*catalog.Product, bool)
}

// Line is one cart entry.
type Line struct {
	ProductID kernel.UUID
	Quantity  int
}

// Checkout is the order payload produced from a cart.
type Checkout struct {
	ClienteNome string
	DataEntrega *time.Time
	Lines       []Line
	guard       guard.ConstructorGuard
}

// ErrCheckoutIsNotConstructed is returned for a Checkout not produced by Cart.Checkout.
var ErrCheckoutIsNotConstructed = errors.New("Checkout must be created via Cart.Checkout")

// Validate ensures the checkout came out of Cart.Checkout.
func (c Checkout) Validate() error {
	return c.guard.Validate(ErrCheckoutIsNotConstructed)
}

// Cart maps product ids to positive quantities. Lines never hold zero.
type Cart struct {
	lines map[kernel.UUID]int
}

func New() *Cart {
	return &Cart{lines: make(map[kernel.UUID]int)}
}

// FromLines builds a cart from request lines. A product may appear once and
// every quantity must be positive.
func FromLines(lines []Line) (*Cart, error) {
	c := New()
	for i, l := range lines {
		if _, ok := c.lines[l.ProductID]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("itens[%d].product_id", i),
				fmt.Errorf("product %s is listed more than once", l.ProductID),
			)
		}
		if err := c.Put(l.ProductID, l.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add increments the quantity of productID by one.
func (c *Cart) Add(productID kernel.UUID) {
	c.init()
	c.lines[productID]++
}

// Remove decrements the quantity of productID by one, dropping the line at zero.
// Removing an absent product does nothing.
func (c *Cart) Remove(productID kernel.UUID) {
	qty, ok := c.lines[productID]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c.lines, productID)
		return
	}
	c.lines[productID] = qty - 1
}

// Put sets the quantity of productID.
func (c *Cart) Put(productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.init()
	c.lines[productID] = quantity
	return nil
}

func (c *Cart) init() {
	if c.lines == nil {
		c.lines = make(map[kernel.UUID]int)
	}
}

// QuantityOf returns 0 for products not in the cart.
func (c *Cart) QuantityOf(productID kernel.UUID) int {
	return c.lines[productID]
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns the cart lines ordered by product id.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.lines))
	for id, qty := range c.lines {
		if qty > 0 {
			lines = append(lines, Line{ProductID: id, Quantity: qty})
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID.String() < lines[j].ProductID.String()
	})
	return lines
}

// ProductIDs returns the ids of every product in the cart, ordered.
func (c *Cart) ProductIDs() []kernel.UUID {
	lines := c.Lines()
	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}

// Total prices the cart at the current sale prices. Products missing from
// the price list contribute nothing.
func (c *Cart) Total(prices PriceList) decimal.Decimal {
	total := decimal.Zero
	for id, qty := range c.lines {
		p, ok := prices.Product(id)
		if !ok || p == nil {
			continue
		}
		total = total.Add(p.PrecoVenda().Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// Checkout validates the cart against the customer data and returns the order payload.
// The cart itself is not modified.
//
// It fails with a validation error when the cart is empty, clienteNome is blank, or
// requireDate is set and dataEntrega is nil. Lines come out sorted by product id.
//
// Example:
//
//	c := cart.New()
//	c.Add(chocolateID)
//	c.Add(chocolateID)
//	checkout, err := c.Checkout("Ana", &entrega, true)
//	if err != nil {
//	    return err
//	}
//	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), checkout)
func (c *Cart) Checkout(clienteNome string, dataEntrega *time.Time, requireDate bool) (Checkout, error) {
	var problems []error
	if c.IsEmpty() {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("itens", errors.New("cart is empty")))
	}
	nome := strings.TrimSpace(clienteNome)
	if nome == "" {
		problems = append(problems, errs.NewValueIsRequiredError("cliente_nome"))
	}
	if requireDate && dataEntrega == nil {
		problems = append(problems, errs.NewValueIsRequiredError("data_entrega"))
	}
	if err := errors.Join(problems...); err != nil {
		return Checkout{}, err
	}

	return Checkout{
		ClienteNome: nome,
		DataEntrega: dataEntrega,
		Lines:       c.Lines(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}
