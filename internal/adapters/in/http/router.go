package http

import (
	"log/slog"
	"net/http"

	"cookieadmin/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig wires the echo instance.
type RouterConfig struct {
	Server   *Server
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

// NewRouter builds the echo instance with health, metrics, API docs and the API routes.
// API routes are validated against the OpenAPI document before reaching the server.
//
//	e, err := http.NewRouter(http.RouterConfig{Server: srv, Logger: logger, Registry: prometheus.NewRegistry()})
//	if err != nil {
//	    return err
//	}
//	e.Logger.Fatal(e.Start(":8080"))
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	metrics, err := NewMetrics(cfg.Registry)
	if err != nil {
		return nil, err
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(cfg.Logger))
	e.Use(metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{Registry: cfg.Registry})))

	RegisterSwagger()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validator)
	servers.RegisterHandlers(api, cfg.Server)

	return e, nil
}
