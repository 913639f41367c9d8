package models

import "time"

// CircuitBreakerState is the state of a circuit breaker guarding an external store.
type CircuitBreakerState int

// ImportanceRow is one row of the customer importance reference dataset.
type ImportanceRow struct {
	CustomerName    string
	MerchantID      string
	Importance      float64
	TransactionType string
	Fraud           bool
}

// CycleResult summarises one polling cycle of the ingestion coordinator.
type CycleResult struct {
	Listed           int
	Applied          int
	Rejected         int
	Skipped          int
	Detections       int
	DeferredBatchKey string
}

// PipelineStatus is the externally visible state of the detection loop.
type PipelineStatus struct {
	Cycles             int64      `json:"cycles"`
	ProcessedBatches   int        `json:"processed_batches"`
	LastBatchKey       string     `json:"last_batch_key,omitempty"`
	LastCycleAt        *time.Time `json:"last_cycle_at,omitempty"`
	NextDetectionIndex int        `json:"next_detection_index"`
	PendingDetections  int        `json:"pending_detections"`
	LastError          string     `json:"last_error,omitempty"`
}
