package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bankpulse/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 500

var (
	ErrBatchAlreadyApplied = errors.New("batch already applied")
	ErrNilBatch            = errors.New("batch cannot be nil")
	// ErrInvalidData marks writes the store refused because of their content
	// (SQLSTATE class 22). Retrying them cannot succeed.
	ErrInvalidData = errors.New("aggregate store rejected data")
)

// dataExceptionClass is the SQLSTATE class for values that do not fit a column.
const dataExceptionClass = "22"

type aggregateRepository struct {
	db *gorm.DB
}

func NewAggregateRepository(db *gorm.DB) AggregateRepositoryInterface {
	return &aggregateRepository{
		db: db,
	}
}

func (r *aggregateRepository) RecordTransaction(ctx context.Context, record *models.TransactionRecord) error {
	if record == nil {
		return errors.New("transaction record cannot be nil")
	}

	delta := models.NewAggregateDelta()
	delta.Add(record)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyDelta(tx, delta)
	})
	return classifyStoreError(err)
}

func (r *aggregateRepository) ApplyRecords(ctx context.Context, records []models.TransactionRecord) error {
	delta := models.FoldRecords(records)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyDelta(tx, delta)
	})
	return classifyStoreError(err)
}

func (r *aggregateRepository) ApplyBatch(ctx context.Context, batch *models.ProcessedBatch, records []models.TransactionRecord) error {
	if batch == nil {
		return ErrNilBatch
	}

	batch.Status = models.BatchStatusApplied
	batch.RecordCount = len(records)
	delta := models.FoldRecords(records)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(batch)
		if result.Error != nil {
			return fmt.Errorf("failed to record batch %s: %w", batch.BatchKey, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrBatchAlreadyApplied
		}

		return applyDelta(tx, delta)
	})
	return classifyStoreError(err)
}

func (r *aggregateRepository) MarkRejected(ctx context.Context, batch *models.ProcessedBatch) error {
	if batch == nil {
		return ErrNilBatch
	}

	batch.Status = models.BatchStatusRejected
	batch.RecordCount = 0

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(batch).Error
	if err != nil {
		return fmt.Errorf("failed to mark batch %s rejected: %w", batch.BatchKey, err)
	}

	return nil
}

func (r *aggregateRepository) ProcessedBatchKeys(ctx context.Context) ([]string, error) {
	var keys []string

	err := r.db.WithContext(ctx).
		Model(&models.ProcessedBatch{}).
		Order("batch_key ASC").
		Pluck("batch_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load processed batches: %w", err)
	}

	return keys, nil
}

func (r *aggregateRepository) ListProcessedBatches(ctx context.Context, offset, limit int) ([]models.ProcessedBatch, int64, error) {
	var (
		batches []models.ProcessedBatch
		total   int64
	)

	db := r.db.WithContext(ctx)

	if err := db.Model(&models.ProcessedBatch{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count processed batches: %w", err)
	}

	err := db.Order("processed_at DESC, batch_key DESC").
		Offset(offset).
		Limit(limit).
		Find(&batches).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list processed batches: %w", err)
	}

	return batches, total, nil
}

func (r *aggregateRepository) Snapshot(ctx context.Context) (*models.AggregateSnapshot, error) {
	db := r.db.WithContext(ctx)
	snapshot := &models.AggregateSnapshot{}

	if err := db.Order("merchant_id ASC").Find(&snapshot.MerchantCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to read merchant counts: %w", err)
	}

	if err := db.Order("merchant_id ASC, customer_name ASC").Find(&snapshot.Summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to read transaction summaries: %w", err)
	}

	if err := db.Order("merchant_id ASC").Find(&snapshot.GenderStats).Error; err != nil {
		return nil, fmt.Errorf("failed to read gender stats: %w", err)
	}

	return snapshot, nil
}

func (r *aggregateRepository) HealthCheck(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// classifyStoreError tags data exceptions with ErrInvalidData and leaves every
// other error untouched.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, dataExceptionClass) {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return err
}

// applyDelta upserts every increment of delta inside tx. Rows are written in
// key order so concurrent writers would always lock in the same sequence.
func applyDelta(tx *gorm.DB, delta *models.AggregateDelta) error {
	if delta.Records == 0 {
		return nil
	}

	now := time.Now().UTC()

	summaries := make([]models.TxnSummary, 0, len(delta.Summaries))
	for _, key := range delta.SortedSummaryKeys() {
		d := delta.Summaries[key]
		summaries = append(summaries, models.TxnSummary{
			MerchantID:   key.MerchantID,
			CustomerName: key.CustomerName,
			TxnCount:     d.TxnCount,
			TotalValue:   d.TotalValue,
			UpdatedAt:    now,
		})
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "merchant_id"}, {Name: "customer_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"txn_count":   gorm.Expr("txn_summary.txn_count + excluded.txn_count"),
			"total_value": gorm.Expr("txn_summary.total_value + excluded.total_value"),
			"updated_at":  now,
		}),
	}).CreateInBatches(summaries, upsertBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert transaction summaries: %w", err)
	}

	merchants := delta.SortedMerchants()

	genders := make([]models.GenderStats, 0, len(delta.Genders))
	for _, merchantID := range merchants {
		g, ok := delta.Genders[merchantID]
		if !ok {
			continue
		}
		genders = append(genders, models.GenderStats{
			MerchantID:  merchantID,
			MaleCount:   g.MaleCount,
			FemaleCount: g.FemaleCount,
			UpdatedAt:   now,
		})
	}

	if len(genders) > 0 {
		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "merchant_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"male_count":   gorm.Expr("gender_stats.male_count + excluded.male_count"),
				"female_count": gorm.Expr("gender_stats.female_count + excluded.female_count"),
				"updated_at":   now,
			}),
		}).CreateInBatches(genders, upsertBatchSize).Error
		if err != nil {
			return fmt.Errorf("failed to upsert gender stats: %w", err)
		}
	}

	counts := make([]models.MerchantTxnCount, 0, len(merchants))
	for _, merchantID := range merchants {
		counts = append(counts, models.MerchantTxnCount{
			MerchantID: merchantID,
			TxnCount:   delta.MerchantCounts[merchantID],
			UpdatedAt:  now,
		})
	}

	err = tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "merchant_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"txn_count":  gorm.Expr("merchant_txn_count.txn_count + excluded.txn_count"),
			"updated_at": now,
		}),
	}).CreateInBatches(counts, upsertBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert merchant counts: %w", err)
	}

	return nil
}
