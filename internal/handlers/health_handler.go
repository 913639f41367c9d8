package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bankpulse/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker is satisfied by the aggregate repository.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	checker HealthChecker
	logger  *slog.Logger
}

func NewHealthCheckHandler(checker HealthChecker, logger *slog.Logger) *HealthCheckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthCheckHandler{checker: checker, logger: logger}
}

// HealthCheck reports 200 while the aggregate store answers a ping and
// SYSTEM_003 otherwise.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.checker.HealthCheck(ctx); err != nil {
		h.logger.Warn("health check failed",
			slog.String("trace_id", getTraceID(c)),
			slog.String("error", err.Error()),
		)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
