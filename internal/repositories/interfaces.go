package repositories

import (
	"context"

	"bankpulse/internal/models"
)

// AggregateRepositoryInterface defines the contract for the aggregation store
// and its processed-batch ledger.
type AggregateRepositoryInterface interface {
	// RecordTransaction applies the three upsert-increments for one record atomically.
	RecordTransaction(ctx context.Context, record *models.TransactionRecord) error

	// ApplyRecords applies records in one database transaction without touching
	// the ledger. Applying the same records twice doubles their contribution.
	ApplyRecords(ctx context.Context, records []models.TransactionRecord) error

	// ApplyBatch applies records and writes the ledger entry in one database
	// transaction. Returns ErrBatchAlreadyApplied if the key is already recorded.
	ApplyBatch(ctx context.Context, batch *models.ProcessedBatch, records []models.TransactionRecord) error

	MarkRejected(ctx context.Context, batch *models.ProcessedBatch) error
	ProcessedBatchKeys(ctx context.Context) ([]string, error)
	ListProcessedBatches(ctx context.Context, offset, limit int) ([]models.ProcessedBatch, int64, error)
	Snapshot(ctx context.Context) (*models.AggregateSnapshot, error)
	HealthCheck(ctx context.Context) error
}
