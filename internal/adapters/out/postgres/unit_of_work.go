// Package postgres implements the unit of work over GORM and wires the table
// repositories to one transaction.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Every order added or updated through the unit of work is written to the outbox
// on Commit, inside the same transaction, when an outbox topic is configured.
package postgres

import (
	"context"

	"cookieadmin/internal/adapters/out/postgres/orderrepo"
	"cookieadmin/internal/adapters/out/postgres/outboxrepo"
	"cookieadmin/internal/adapters/out/postgres/productrepo"
	"cookieadmin/internal/adapters/out/postgres/routerepo"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/core/domain/services"
	"cookieadmin/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate changed during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates one GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	outboxTopic string
	projector   services.SalesFactProjector
}

// NewGormUnitOfWorkFactory builds the factory. An empty outboxTopic disables the outbox.
func NewGormUnitOfWorkFactory(db *gorm.DB, outboxTopic string) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:          db,
		outboxTopic: outboxTopic,
		projector:   services.NewSalesFactProjector(),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		outboxTopic:       f.outboxTopic,
		projector:         f.projector,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates it touched.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	outboxTopic       string
	projector         services.SalesFactProjector
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while active does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes outbox messages for tracked orders and commits.
// On failure the transaction is rolled back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.writeOutbox(ctx); err != nil {
		_ = uow.tx.Rollback()
		uow.tx = nil
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction. Without an active transaction it returns
// gorm.ErrInvalidTransaction, which deferred calls ignore after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate changed within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the transaction when one is active, the plain connection otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// writeOutbox emits one order.changed message per distinct tracked order, carrying
// the final state reached in this transaction.
func (uow *GormUnitOfWork) writeOutbox(ctx context.Context) error {
	if uow.outboxTopic == "" || len(uow.trackedAggregates) == 0 {
		return nil
	}

	seen := make(map[kernel.UUID]struct{}, len(uow.trackedAggregates))
	messages := make([]outboxrepo.OutboxDTO, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		o, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if _, dup := seen[tracked.ID]; dup {
			continue
		}
		seen[tracked.ID] = struct{}{}

		msg, err := outboxrepo.NewOrderChangedMessage(uow.outboxTopic, o, uow.projector.Project(o))
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	return outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, messages...)
}
