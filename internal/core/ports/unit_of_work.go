package ports

import (
	"context"
)

// UnitOfWorkFactory creates one UnitOfWork per request or job run.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories it returns share the
// transaction started by Begin. Order changes recorded during the transaction are
// written to the outbox on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback discards the transaction. After Commit it returns an error that
	// deferred callers ignore.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	RouteRepository() RouteRepository
	OutboxRepository() OutboxRepository
}
