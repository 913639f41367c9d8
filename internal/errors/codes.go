package errors

// ErrorCode represents a standardized error code returned by the ops API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Batch error codes (BATCH_*)
const (
	BatchNotFound       ErrorCode = "BATCH_001"
	BatchMalformed      ErrorCode = "BATCH_002"
	BatchAlreadyApplied ErrorCode = "BATCH_003"
	BatchInvalidKey     ErrorCode = "BATCH_004"
)

// Pipeline error codes (PIPELINE_*)
const (
	PipelineNotRunning       ErrorCode = "PIPELINE_001"
	PipelineStoreUnavailable ErrorCode = "PIPELINE_002"
	PipelineSinkUnavailable  ErrorCode = "PIPELINE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	BatchNotFound:       "Batch not found",
	BatchMalformed:      "Batch could not be parsed",
	BatchAlreadyApplied: "Batch has already been applied",
	BatchInvalidKey:     "Invalid batch key",

	PipelineNotRunning:       "Detection pipeline is not running",
	PipelineStoreUnavailable: "Aggregate store is unavailable",
	PipelineSinkUnavailable:  "Detection sink is unavailable",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
