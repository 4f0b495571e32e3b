package queries

import (
	"errors"

	"cookieadmin/internal/core/domain/model/cart"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrQuoteCartQueryIsNotConstructed = errors.New(
	"QuoteCartQuery must be created via NewQuoteCartQuery constructor",
)

// QuoteCartQuery prices a cart at the current catalog prices without placing an order.
//
// Example:
//
//	query, err := queries.NewQuoteCartQuery([]cart.Line{{ProductID: id, Quantity: 3}})
//	if err != nil {
//	    return err
//	}
//	quote, err := handler.Handle(ctx, query)
//	fmt.Println(quote.Total.StringFixed(2))
type QuoteCartQuery struct {
	cart *cart.Cart

	guard guard.ConstructorGuard
}

// NewQuoteCartQuery rejects duplicate products and non-positive quantities.
// An empty cart is valid and quotes zero.
func NewQuoteCartQuery(lines []cart.Line) (QuoteCartQuery, error) {
	c, err := cart.FromLines(lines)
	if err != nil {
		return QuoteCartQuery{}, err
	}
	return QuoteCartQuery{cart: c, guard: guard.NewConstructorGuard()}, nil
}

func (q QuoteCartQuery) Validate() error {
	return q.guard.Validate(ErrQuoteCartQueryIsNotConstructed)
}

func (q QuoteCartQuery) Cart() *cart.Cart {
	return q.cart
}

// QuoteCartQueryResponse carries the cart total and one line per cart entry.
// Lines for products that no longer exist have Known false and a zero subtotal.
type QuoteCartQueryResponse struct {
	Total decimal.Decimal
	Lines []QuoteCartQueryLine
}

type QuoteCartQueryLine struct {
	ProductID  kernel.UUID
	Sabor      string
	Quantity   int
	PrecoVenda decimal.Decimal
	Subtotal   decimal.Decimal
	Known      bool
}
