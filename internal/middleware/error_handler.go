package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"bankpulse/internal/errors"
	"bankpulse/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewHTTPErrorHandler formats every unhandled error as an ErrorResponse, logs
// it at WARN (4xx) or ERROR (5xx) and counts it in bankpulse_api_errors_total.
func NewHTTPErrorHandler(logger *slog.Logger, reg prometheus.Registerer) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}

	apiErrorsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bankpulse",
			Name:      "api_errors_total",
			Help:      "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var errorResponse *errors.ErrorResponse
		var httpStatus int

		var echoErr *echo.HTTPError
		var validationErrs validator.ValidationErrors
		switch {
		case stderrors.As(err, &echoErr):
			errorResponse = errors.NewErrorResponse(
				mapHTTPStatusToErrorCode(echoErr.Code),
				traceID,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		case stderrors.As(err, &validationErrs):
			details := make([]string, 0, len(validationErrs))
			for _, fe := range validationErrs {
				details = append(details, validation.FormatFieldError(fe))
			}
			errorResponse = errors.NewValidationErrorFromList(details, traceID)
			httpStatus = http.StatusBadRequest
		default:
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		level := slog.LevelWarn
		if httpStatus >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		logger.Log(c.Request().Context(), level, "HTTP error occurred",
			slog.String("trace_id", traceID),
			slog.String("error_code", errorResponse.Error.Code),
			slog.Int("status", httpStatus),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.String("error", err.Error()),
		)

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			fmt.Sprintf("%d", httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			logger.Error("Failed to send error response",
				slog.String("trace_id", traceID),
				slog.String("error", sendErr.Error()),
			)
		}
	}
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusMethodNotAllowed:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
