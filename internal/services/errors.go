package services

import "errors"

var (
	// ErrMalformedBatch marks a batch whose shape or fields cannot be parsed.
	// Such a batch is rejected permanently and never retried.
	ErrMalformedBatch = errors.New("malformed batch")

	// ErrReferenceDataLoad is returned when the importance reference data is
	// missing or unreadable at startup.
	ErrReferenceDataLoad = errors.New("failed to load reference data")

	// ErrStoreUnavailable is returned once the aggregate store has failed past
	// the circuit breaker's budget.
	ErrStoreUnavailable = errors.New("aggregate store unavailable")

	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
