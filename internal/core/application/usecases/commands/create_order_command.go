package commands

import (
	"errors"

	"cookieadmin/internal/core/domain/model/cart"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order from a validated cart checkout.
//
// Example:
//
//	c, _ := cart.FromLines(lines)
//	checkout, err := c.Checkout("Ana", &entrega, true)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), checkout)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	checkout cart.Checkout

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.UUID, checkout cart.Checkout) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCheckout(checkout),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Checkout() cart.Checkout {
	return c.checkout
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCheckout(checkout cart.Checkout) error {
	if err := checkout.Validate(); err != nil {
		return err
	}

	c.checkout = checkout
	return nil
}
