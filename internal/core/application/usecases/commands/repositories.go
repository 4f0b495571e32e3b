// Package commands contains the operations that change state. Every handler runs
// in its own unit of work: validate the command, begin, load, mutate through the
// domain, persist, commit. A deferred rollback undoes anything not committed.
package commands

import (
	"context"

	"cookieadmin/internal/core/ports"
)

// Unit of work views narrowed to the repositories each handler needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// ProductUoW is used by catalog maintenance.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW is used by order placement and lifecycle changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RouteUoW is used by route creation, which writes the route and all its orders together.
	RouteUoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// OutboxUoW is used by the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
