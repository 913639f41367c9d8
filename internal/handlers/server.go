package handlers

import (
	"log/slog"

	"bankpulse/internal/middleware"
	"bankpulse/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerDeps holds everything the ops API needs.
type ServerDeps struct {
	Logger      *slog.Logger
	Repository  repositories.AggregateRepositoryInterface
	Status      StatusProvider
	RateLimiter *middleware.RateLimiter
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
}

// NewServer builds the echo instance serving /health, /metrics and /api/v1.
func NewServer(deps ServerDeps) *echo.Echo {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		if g, ok := registerer.(prometheus.Gatherer); ok {
			gatherer = g
		} else {
			gatherer = prometheus.DefaultGatherer
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger, registerer)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	if deps.RateLimiter != nil {
		e.Use(deps.RateLimiter.Middleware())
	}

	health := NewHealthCheckHandler(deps.Repository, logger)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	pipeline := NewPipelineHandler(deps.Status, deps.Repository, logger)
	api := e.Group("/api/v1")
	api.GET("/status", pipeline.GetStatus)
	api.GET("/batches", pipeline.ListBatches)

	return e
}
