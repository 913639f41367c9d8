package handlers

import (
	"net/http"

	"bankpulse/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (client and pipeline state
// errors, with a registered code) or SendSystemError (anything internal,
// rendered as SYSTEM_001 without leaking the cause).

const (
	// TraceIDContextKey matches the key the RequestID middleware sets
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError hides err behind SYSTEM_001; the caller logs the cause.
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
