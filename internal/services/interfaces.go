package services

import (
	"context"
	"io"
	"time"

	"bankpulse/internal/models"
)

// ImportanceLookupInterface resolves the mean importance of a customer for a
// transaction type.
type ImportanceLookupInterface interface {
	Lookup(customerName, transactionType string) float64
}

// BatchReaderInterface loads and parses one batch from the blob store
type BatchReaderInterface interface {
	Read(ctx context.Context, key string) ([]models.TransactionRecord, error)
}

// PatternDetectorInterface evaluates the detection rules against a snapshot
type PatternDetectorInterface interface {
	Detect(snapshot *models.AggregateSnapshot, now time.Time) []models.DetectionEvent
}

// DetectionSinkInterface is where flushed detection batches are written.
type DetectionSinkInterface interface {
	Write(ctx context.Context, index int, events []models.DetectionEvent) error
	// NextBatchIndex returns the first batch index not yet written.
	NextBatchIndex(ctx context.Context) (int, error)
}

type DetectionBatcherInterface interface {
	Add(ctx context.Context, event models.DetectionEvent) error
	AddAll(ctx context.Context, events []models.DetectionEvent) error
	ForceFlush(ctx context.Context) error
	Pending() int
	NextIndex() int
}

// DetectionPublisherInterface publishes a JSON message to a broker.
type DetectionPublisherInterface interface {
	Publish(ctx context.Context, message interface{}) error
}

type BatchIngestionCoordinatorInterface interface {
	RunCycle(ctx context.Context) (*models.CycleResult, error)
	Run(ctx context.Context) error
	Status() models.PipelineStatus
}

// BatchProducerInterface splits a transactions CSV into chunk batches
type BatchProducerInterface interface {
	Produce(ctx context.Context, source io.Reader) (int, error)
}

// TransactionGeneratorInterface generates BankSim-shaped transaction data
type TransactionGeneratorInterface interface {
	Generate(count int) []models.TransactionRecord
	WriteCSV(w io.Writer, records []models.TransactionRecord) error
	GenerateImportance(records []models.TransactionRecord) []models.ImportanceRow
	WriteImportanceCSV(w io.Writer, rows []models.ImportanceRow) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type PipelineLoggerInterface interface {
	LogBatchProcessingStarted(ctx context.Context, batchKey string)
	LogBatchProcessed(ctx context.Context, batchKey string, records int, detections int, durationMs int64)
	LogBatchRejected(ctx context.Context, batchKey string, reason string)
	LogBatchSkipped(ctx context.Context, batchKey string, reason string)
	LogRetryAttempt(ctx context.Context, operation string, attempt, maxAttempts int, backoffMs int64, errorMsg string)
	LogBatchDeferred(ctx context.Context, batchKey string, errorMsg string)
	LogDetectionBatchFlushed(ctx context.Context, index int, events int)
	LogDetectionFlushFailed(ctx context.Context, index int, pending int, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogCycleCompleted(ctx context.Context, result *models.CycleResult, durationMs int64)
}
