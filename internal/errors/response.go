package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every non-2xx ops API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the registered message for the code.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError renders one "field: message" detail per entry, sorted by
// field so responses are stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)
	return NewValidationErrorFromList(details, traceID)
}

func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError returns a SYSTEM_001 response that carries none of err's
// text, together with err for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// GetHTTPStatus maps an error code to its HTTP status. Pipeline codes are all
// 503: they describe the detection loop's collaborators, not the request.
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, BatchInvalidKey:
		return http.StatusBadRequest
	case BatchNotFound, SystemRouteNotFound:
		return http.StatusNotFound
	case BatchAlreadyApplied:
		return http.StatusConflict
	case BatchMalformed:
		return http.StatusUnprocessableEntity
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests
	case SystemServiceUnavailable, PipelineNotRunning, PipelineStoreUnavailable,
		PipelineSinkUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= http.StatusInternalServerError
}
