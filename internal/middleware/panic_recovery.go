package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"bankpulse/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 response and logs
// the stack with the request's trace ID.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					logger.Error("Panic recovered",
						slog.String("trace_id", traceID),
						slog.String("panic", fmt.Sprintf("%v", r)),
						slog.String("stack_trace", string(debug.Stack())),
						slog.String("path", c.Request().URL.Path),
						slog.String("method", c.Request().Method),
					)

					errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
					if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
						logger.Error("Failed to send panic recovery response",
							slog.String("trace_id", traceID),
							slog.String("error", err.Error()),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
