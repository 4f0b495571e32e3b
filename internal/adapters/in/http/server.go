package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cookieadmin/internal/core/application/usecases/commands"
	"cookieadmin/internal/core/application/usecases/queries"
	"cookieadmin/internal/core/domain/model/cart"
	"cookieadmin/internal/core/domain/model/catalog"
	"cookieadmin/internal/core/domain/model/kernel"
	"cookieadmin/internal/core/domain/model/order"
	"cookieadmin/internal/core/domain/model/route"
	"cookieadmin/internal/generated/servers"
	"cookieadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
)

// Use case handlers the server delegates to. The commands and queries packages
// provide the implementations.
type (
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (*catalog.Product, error)
	}
	UpdateProductHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*catalog.Product, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	AdvanceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (order.Status, error)
	}
	ReportLossHandler interface {
		Handle(ctx context.Context, cmd commands.ReportLossCommand) (order.Loss, error)
	}
	CreateDeliveryRouteHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDeliveryRouteCommand) (*route.DeliveryRoute, error)
	}
	GetCatalogHandler interface {
		Handle(ctx context.Context, query queries.GetCatalogQuery) ([]queries.GetCatalogQueryResponse, error)
	}
	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
	}
	QuoteCartHandler interface {
		Handle(ctx context.Context, query queries.QuoteCartQuery) (queries.QuoteCartQueryResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateProduct       CreateProductHandler
	UpdateProduct       UpdateProductHandler
	CreateOrder         CreateOrderHandler
	AdvanceOrder        AdvanceOrderHandler
	ReportLoss          ReportLossHandler
	CreateDeliveryRoute CreateDeliveryRouteHandler
	GetCatalog          GetCatalogHandler
	GetOrders           GetOrdersHandler
	QuoteCart           QuoteCartHandler
}

// ServerConfig holds the request handling options.
type ServerConfig struct {
	// RequireDeliveryDate rejects orders without data_entrega.
	RequireDeliveryDate bool
	// Now is the clock used for urgency. Defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers            Handlers
	requireDeliveryDate bool
	now                 func() time.Time
	logger              *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, cfg ServerConfig) *Server {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		handlers:            handlers,
		requireDeliveryDate: cfg.RequireDeliveryDate,
		now:                 now,
		logger:              logger.With("component", "http_server"),
	}
}

// GetCookies handles GET /api/v1/cookies.
func (s *Server) GetCookies(ctx echo.Context) error {
	products, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Cookie, len(products))
	for i, p := range products {
		response[i] = servers.Cookie{
			Id:            p.ID.Bytes(),
			Sabor:         p.Sabor,
			Descricao:     p.Descricao,
			PrecoVenda:    money(p.PrecoVenda),
			CustoProducao: money(p.CustoProducao),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCookie handles POST /api/v1/cookies.
func (s *Server) CreateCookie(ctx echo.Context) error {
	var body servers.NewCookie
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), body.Sabor, deref(body.Descricao), body.PrecoVenda, body.CustoProducao)
	if err != nil {
		return s.fail(ctx, err)
	}

	product, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCookie(product))
}

// UpdateCookie handles PUT /api/v1/cookies/{id}.
func (s *Server) UpdateCookie(ctx echo.Context, id types.UUID) error {
	var body servers.NewCookie
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := toKernelUUID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, body.Sabor, deref(body.Descricao), body.PrecoVenda, body.CustoProducao)
	if err != nil {
		return s.fail(ctx, err)
	}

	product, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCookie(product))
}

// QuoteCart handles POST /api/v1/cart/quote.
func (s *Server) QuoteCart(ctx echo.Context) error {
	var body servers.CartQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines, err := toCartLines(body.Itens)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewQuoteCartQuery(lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	quote, err := s.handlers.QuoteCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartQuote(quote))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var raw string
	if params.View != nil {
		raw = string(*params.View)
	}

	view, err := queries.ParseView(raw)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(view, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderView(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines, err := toCartLines(body.Itens)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := cart.FromLines(lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	checkout, err := c.Checkout(body.ClienteNome, body.DataEntrega, s.requireDeliveryDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), checkout)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(o, s.now()))
}

// AdvanceOrderStatus handles PATCH /api/v1/orders/{id}/status. The body is optional.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, id types.UUID) error {
	var body servers.AdvanceOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var expected *order.Status
	if body.CurrentStatus != nil {
		status, parseErr := order.ParseStatus(*body.CurrentStatus)
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		expected = &status
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, expected)
	if err != nil {
		return s.fail(ctx, err)
	}

	next, err := s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatus{Status: next.String()})
}

// ReportOrderLoss handles POST /api/v1/orders/{id}/loss.
func (s *Server) ReportOrderLoss(ctx echo.Context, id types.UUID) error {
	var body servers.ReportLossRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReportLossCommand(orderID, body.Motivo)
	if err != nil {
		return s.fail(ctx, err)
	}

	loss, err := s.handlers.ReportLoss.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.LossReport{
		Status:        order.Extraviado.String(),
		Motivo:        loss.Reason(),
		PrejuizoTotal: money(loss.PrejuizoTotal()),
	})
}

// CreateDeliveryRoute handles POST /api/v1/logistics/routes.
func (s *Server) CreateDeliveryRoute(ctx echo.Context) error {
	var body servers.NewDeliveryRoute
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(body.PedidosIds))
	for i, raw := range body.PedidosIds {
		id, err := toKernelUUID(fmt.Sprintf("pedidos_ids[%d]", i), raw)
		if err != nil {
			return s.fail(ctx, errs.NewInvalidRouteErrorWithCause("order id is invalid", err))
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewCreateDeliveryRouteCommand(kernel.NewUUID(), body.MotoboyNome, body.CustoTotal, ids)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.handlers.CreateDeliveryRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDeliveryRoute(r))
}
