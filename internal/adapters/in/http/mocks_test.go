package http_test

import (
	"context"

	"cookieadmin/internal/core/application/usecases/commands"
	"cookieadmin/internal/core/application/usecases/queries"
	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/core/domain/model/route"

	"github.com/stretchr/testify/mock"
)

type MockCreateProductHandler struct{ mock.Mock }

func (m *MockCreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) (*catalog.Product, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

type MockUpdateProductHandler struct{ mock.Mock }

func (m *MockUpdateProductHandler) Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*catalog.Product, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAdvanceOrderHandler struct{ mock.Mock }

func (m *MockAdvanceOrderHandler) Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (order.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Status), args.Error(1)
}

type MockReportLossHandler struct{ mock.Mock }

func (m *MockReportLossHandler) Handle(ctx context.Context, cmd commands.ReportLossCommand) (order.Loss, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Loss), args.Error(1)
}

type MockCreateDeliveryRouteHandler struct{ mock.Mock }

func (m *MockCreateDeliveryRouteHandler) Handle(
	ctx context.Context,
	cmd commands.CreateDeliveryRouteCommand,
) (*route.DeliveryRoute, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.DeliveryRoute), args.Error(1)
}

type MockGetCatalogHandler struct{ mock.Mock }

func (m *MockGetCatalogHandler) Handle(
	ctx context.Context,
	query queries.GetCatalogQuery,
) ([]queries.GetCatalogQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetCatalogQueryResponse), args.Error(1)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetOrdersQuery,
) ([]queries.GetOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetOrdersQueryResponse), args.Error(1)
}

type MockQuoteCartHandler struct{ mock.Mock }

func (m *MockQuoteCartHandler) Handle(
	ctx context.Context,
	query queries.QuoteCartQuery,
) (queries.QuoteCartQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.QuoteCartQueryResponse), args.Error(1)
}
