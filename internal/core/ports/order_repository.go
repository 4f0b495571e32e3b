// Package ports defines the contracts between the order core and its infrastructure:
// repositories, the unit of work and the outbound message producer.
package ports

import (
	"context"

	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates with optimistic versioning.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order only if the stored version still equals aggregate.Version(),
	// then bumps the version. A lost race returns errs.ConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetManyForUpdate loads and row-locks the given orders until the transaction ends.
	// Unknown ids are simply absent from the result, which keeps the requested order.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
}
