// Package servers holds the HTTP contract of the service: the OpenAPI document,
// its request and response models and the echo routing for ServerInterface.
// It follows the layout oapi-codegen produces for echo servers.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List the products available for sale
	// (GET /api/v1/cookies)
	GetCookies(ctx echo.Context) error
	// Add a product to the catalog
	// (POST /api/v1/cookies)
	CreateCookie(ctx echo.Context) error
	// Replace the editable fields of a product
	// (PUT /api/v1/cookies/{id})
	UpdateCookie(ctx echo.Context, id types.UUID) error
	// Price a cart at the current catalog prices
	// (POST /api/v1/cart/quote)
	QuoteCart(ctx echo.Context) error
	// List a fulfillment queue sorted by delivery date
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// Place an order from a cart
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Move an order one step forward
	// (PATCH /api/v1/orders/{id}/status)
	AdvanceOrderStatus(ctx echo.Context, id types.UUID) error
	// Mark an order as lost
	// (POST /api/v1/orders/{id}/loss)
	ReportOrderLoss(ctx echo.Context, id types.UUID) error
	// Dispatch ready orders with one courier
	// (POST /api/v1/logistics/routes)
	CreateDeliveryRoute(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetCookies(ctx echo.Context) error {
	return w.Handler.GetCookies(ctx)
}

func (w *ServerInterfaceWrapper) CreateCookie(ctx echo.Context) error {
	return w.Handler.CreateCookie(ctx)
}

func (w *ServerInterfaceWrapper) UpdateCookie(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateCookie(ctx, id)
}

func (w *ServerInterfaceWrapper) QuoteCart(ctx echo.Context) error {
	return w.Handler.QuoteCart(ctx)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "view", ctx.QueryParams(), &params.View)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter view: %s", err))
	}

	return w.Handler.GetOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) AdvanceOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AdvanceOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) ReportOrderLoss(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReportOrderLoss(ctx, id)
}

func (w *ServerInterfaceWrapper) CreateDeliveryRoute(ctx echo.Context) error {
	return w.Handler.CreateDeliveryRoute(ctx)
}

func bindID(ctx echo.Context) (types.UUID, error) {
	var id types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/cookies", wrapper.GetCookies)
	router.POST(baseURL+"/api/v1/cookies", wrapper.CreateCookie)
	router.PUT(baseURL+"/api/v1/cookies/:id", wrapper.UpdateCookie)
	router.POST(baseURL+"/api/v1/cart/quote", wrapper.QuoteCart)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.PATCH(baseURL+"/api/v1/orders/:id/status", wrapper.AdvanceOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:id/loss", wrapper.ReportOrderLoss)
	router.POST(baseURL+"/api/v1/logistics/routes", wrapper.CreateDeliveryRoute)
}
