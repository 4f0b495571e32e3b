package cmd

import (
	"log/slog"
	"time"

	httpin "cookieadmin/internal/adapters/in/http"
	"cookieadmin/internal/adapters/out/kafka"
	"cookieadmin/internal/adapters/out/postgres"
	"cookieadmin/internal/core/application/usecases/commands"
	"cookieadmin/internal/core/application/usecases/queries"
	"cookieadmin/internal/core/domain/services"
	"cookieadmin/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	topic := ""
	if config.OutboxEnabled() {
		topic = config.KafkaOrderChangedTopic
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, topic),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReportLossCommandHandler() commands.ReportLossCommandHandler {
	return commands.NewReportLossCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryRouteCommandHandler() commands.CreateDeliveryRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryRouteCommandHandler(f, services.NewRouteAllocator())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(producer *kafka.Producer) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, producer)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuoteCartQueryHandler() queries.QuoteCartQueryHandler {
	return queries.NewQuoteCartQueryHandler(c.gormDB)
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateProduct:       c.CreateCreateProductCommandHandler(),
		UpdateProduct:       c.CreateUpdateProductCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		AdvanceOrder:        c.CreateAdvanceOrderCommandHandler(),
		ReportLoss:          c.CreateReportLossCommandHandler(),
		CreateDeliveryRoute: c.CreateCreateDeliveryRouteCommandHandler(),
		GetCatalog:          c.CreateGetCatalogQueryHandler(),
		GetOrders:           c.CreateGetOrdersQueryHandler(),
		QuoteCart:           c.CreateQuoteCartQueryHandler(),
	}, httpin.ServerConfig{
		RequireDeliveryDate: c.config.RequireDeliveryDate,
		Now:                 time.Now,
		Logger:              c.logger,
	})
}

// CreateJobManager builds the outbox relay. The producer is owned by the caller.
func (c *CompositionRoot) CreateJobManager(producer *kafka.Producer) *jobs.JobManager {
	batchSize := c.config.OutboxBatchSize
	if batchSize == 0 {
		batchSize = DefaultOutboxBatchSize
	}
	return jobs.NewJobManager(c.CreateRelayOutboxCommandHandler(producer), batchSize, c.logger)
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
