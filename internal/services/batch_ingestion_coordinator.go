package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bankpulse/internal/blobstore"
	"bankpulse/internal/models"
	"bankpulse/internal/repositories"
)

const shutdownFlushTimeout = 10 * time.Second

var errDetectionSinkUnavailable = errors.New("detection sink unavailable")

type CoordinatorConfig struct {
	ChunkPrefix  string
	ChunkSuffix  string
	PollInterval time.Duration
}

// BatchIngestionCoordinator drives the detection loop: it lists new batches,
// folds each one into the aggregates together with its ledger entry, evaluates
// the patterns and hands the events to the batcher. Batches are processed one
// at a time in ascending key order.
type BatchIngestionCoordinator struct {
	store    blobstore.Store
	reader   BatchReaderInterface
	repo     repositories.AggregateRepositoryInterface
	detector PatternDetectorInterface
	batcher  DetectionBatcherInterface
	breaker  CircuitBreakerInterface
	retrier  *Retrier
	metrics  MetricsRecorderInterface
	events   PipelineLoggerInterface
	logger   *slog.Logger
	config   CoordinatorConfig
	now      func() time.Time

	mu        sync.RWMutex
	processed map[string]struct{}
	status    models.PipelineStatus
}

func NewBatchIngestionCoordinator(
	store blobstore.Store,
	reader BatchReaderInterface,
	repo repositories.AggregateRepositoryInterface,
	detector PatternDetectorInterface,
	batcher DetectionBatcherInterface,
	breaker CircuitBreakerInterface,
	retrier *Retrier,
	metrics MetricsRecorderInterface,
	events PipelineLoggerInterface,
	config CoordinatorConfig,
) *BatchIngestionCoordinator {
	if config.PollInterval <= 0 {
		config.PollInterval = time.Second
	}
	return &BatchIngestionCoordinator{
		store:    store,
		reader:   reader,
		repo:     repo,
		detector: detector,
		batcher:  batcher,
		breaker:  breaker,
		retrier:  retrier,
		metrics:  metrics,
		events:   events,
		logger:   slog.Default(),
		config:   config,
		now:      time.Now,
	}
}

// Run repeats RunCycle every poll interval until ctx is cancelled or the
// aggregate store becomes unavailable. Pending detections are flushed on the
// way out.
func (c *BatchIngestionCoordinator) Run(ctx context.Context) error {
	c.logger.Info("starting batch ingestion coordinator",
		slog.String("chunk_prefix", c.config.ChunkPrefix),
		slog.Duration("poll_interval", c.config.PollInterval),
	)

	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := c.RunCycle(ctx); err != nil {
			if errors.Is(err, ErrStoreUnavailable) {
				c.logger.Error("aggregate store unavailable, stopping",
					slog.String("error", err.Error()),
				)
				c.shutdownFlush(ctx)
				return err
			}
			if ctx.Err() == nil {
				c.logger.Warn("cycle failed, retrying next poll",
					slog.String("error", err.Error()),
				)
			}
		}

		select {
		case <-ctx.Done():
			c.logger.Info("coordinator shutting down")
			c.shutdownFlush(ctx)
			c.logger.Info("coordinator stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (c *BatchIngestionCoordinator) shutdownFlush(ctx context.Context) {
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownFlushTimeout)
	defer cancel()

	if err := c.batcher.ForceFlush(flushCtx); err != nil {
		c.logger.Error("failed to flush pending detections on shutdown",
			slog.Int("pending", c.batcher.Pending()),
			slog.String("error", err.Error()),
		)
	}
}

// RunCycle processes every batch not yet in the ledger, then force-flushes the
// batcher. A transient failure stops the cycle at the failing batch so later
// batches are never applied before it. Every cycle pings the aggregate store
// first so an outage trips the breaker even when no batch is waiting.
func (c *BatchIngestionCoordinator) RunCycle(ctx context.Context) (*models.CycleResult, error) {
	start := c.now()

	if err := c.guardStore(ctx, "aggregate.ping", c.repo.HealthCheck); err != nil {
		err = c.storeError(err, "reach aggregate store")
		c.recordError(err)
		return nil, err
	}

	if err := c.loadProcessed(ctx); err != nil {
		c.recordError(err)
		return nil, err
	}

	var keys []string
	err := c.retrier.Do(ctx, "blob.list", func(ctx context.Context) error {
		var err error
		keys, err = blobstore.ListSorted(ctx, c.store, c.config.ChunkPrefix, c.config.ChunkSuffix)
		return err
	})
	if err != nil {
		err = fmt.Errorf("failed to list batches: %w", err)
		c.recordError(err)
		return nil, err
	}

	result := &models.CycleResult{Listed: len(keys)}
	var cycleErr error

	for _, key := range keys {
		if ctx.Err() != nil {
			break
		}
		if c.isProcessed(key) {
			continue
		}

		if err := c.processBatch(ctx, key, result); err != nil {
			if !c.isProcessed(key) {
				result.DeferredBatchKey = key
				c.metrics.IncrementCounter("batch.deferred", nil)
				c.events.LogBatchDeferred(ctx, key, err.Error())
			}
			cycleErr = err
			break
		}
	}

	if !errors.Is(cycleErr, ErrStoreUnavailable) {
		if err := c.batcher.ForceFlush(ctx); err != nil && cycleErr == nil {
			cycleErr = fmt.Errorf("%w: %w", errDetectionSinkUnavailable, err)
		}
	}

	duration := c.now().Sub(start)
	c.metrics.RecordProcessingTime("cycle", duration)
	c.events.LogCycleCompleted(ctx, result, duration.Milliseconds())
	c.completeCycle(cycleErr)

	return result, cycleErr
}

func (c *BatchIngestionCoordinator) processBatch(ctx context.Context, key string, result *models.CycleResult) error {
	start := c.now()
	ctx, correlationID := NewCorrelationID(ctx)

	c.events.LogBatchProcessingStarted(ctx, key)

	var records []models.TransactionRecord
	err := c.retrier.Do(ctx, "blob.get", func(ctx context.Context) error {
		var err error
		records, err = c.reader.Read(ctx, key)
		return err
	})
	if errors.Is(err, ErrMalformedBatch) {
		return c.rejectBatch(ctx, key, correlationID, err, result)
	}
	if err != nil {
		return fmt.Errorf("failed to read batch %s: %w", key, err)
	}

	batch := &models.ProcessedBatch{
		BatchKey:      key,
		CorrelationID: correlationID,
	}

	err = c.applyBatch(ctx, batch, records)
	if errors.Is(err, repositories.ErrBatchAlreadyApplied) {
		c.markProcessed(key)
		result.Skipped++
		c.metrics.IncrementCounter("batch.skipped", nil)
		c.events.LogBatchSkipped(ctx, key, err.Error())
		return nil
	}
	if errors.Is(err, repositories.ErrInvalidData) {
		return c.rejectBatch(ctx, key, correlationID, fmt.Errorf("%w: %w", ErrMalformedBatch, err), result)
	}
	if err != nil {
		return c.storeError(err, "apply batch %s", key)
	}

	c.markProcessed(key)
	result.Applied++
	c.metrics.IncrementCounter("batch.applied", nil)
	c.metrics.AddCounter("transactions.ingested", float64(len(records)), nil)

	var snapshot *models.AggregateSnapshot
	err = c.guardStore(ctx, "aggregate.snapshot", func(ctx context.Context) error {
		var err error
		snapshot, err = c.repo.Snapshot(ctx)
		return err
	})
	if err != nil {
		return c.storeError(err, "snapshot aggregates after %s", key)
	}

	detections := c.detector.Detect(snapshot, c.now())
	result.Detections += len(detections)
	for i := range detections {
		c.metrics.IncrementCounter("detection.emitted", map[string]string{
			"pattern": detections[i].PatternID,
		})
	}

	duration := c.now().Sub(start)
	c.metrics.RecordProcessingTime("batch.processing", duration)
	c.events.LogBatchProcessed(ctx, key, len(records), len(detections), duration.Milliseconds())

	if err := c.batcher.AddAll(ctx, detections); err != nil {
		return fmt.Errorf("%w: %w", errDetectionSinkUnavailable, err)
	}

	return nil
}

// applyBatch commits records and the ledger entry in one transaction.
func (c *BatchIngestionCoordinator) applyBatch(ctx context.Context, batch *models.ProcessedBatch, records []models.TransactionRecord) error {
	return c.guardStore(ctx, "aggregate.apply", func(ctx context.Context) error {
		return c.repo.ApplyBatch(ctx, batch, records)
	})
}

// guardStore runs fn against the aggregate store under the circuit breaker,
// retrying transient failures. Refused data and already applied batches prove
// the store is reachable and count as successes.
func (c *BatchIngestionCoordinator) guardStore(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	return c.retrier.Do(ctx, operation, func(ctx context.Context) error {
		if c.breaker.IsOpen() {
			return ErrCircuitBreakerOpen
		}

		err := fn(ctx)
		switch {
		case err == nil,
			errors.Is(err, repositories.ErrBatchAlreadyApplied),
			errors.Is(err, repositories.ErrInvalidData):
			c.breaker.RecordSuccess()
		case ctx.Err() != nil:
		default:
			c.breaker.RecordFailure()
		}
		return err
	})
}

// storeError describes a failed store operation. Once the breaker is open the
// error wraps ErrStoreUnavailable, which stops Run.
func (c *BatchIngestionCoordinator) storeError(err error, format string, args ...any) error {
	action := fmt.Sprintf(format, args...)
	if c.breaker.GetState() == StateOpen {
		return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, action, err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func (c *BatchIngestionCoordinator) rejectBatch(ctx context.Context, key, correlationID string, cause error, result *models.CycleResult) error {
	batch := &models.ProcessedBatch{
		BatchKey:      key,
		ErrorMessage:  cause.Error(),
		CorrelationID: correlationID,
	}

	err := c.guardStore(ctx, "ledger.reject", func(ctx context.Context) error {
		return c.repo.MarkRejected(ctx, batch)
	})
	if err != nil {
		return c.storeError(err, "record rejected batch %s", key)
	}

	c.markProcessed(key)
	result.Rejected++
	c.metrics.IncrementCounter("batch.rejected", nil)
	c.events.LogBatchRejected(ctx, key, cause.Error())

	return nil
}

// loadProcessed seeds the in-memory ledger from the database on first use.
func (c *BatchIngestionCoordinator) loadProcessed(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.processed != nil
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	var keys []string
	err := c.guardStore(ctx, "ledger.load", func(ctx context.Context) error {
		var err error
		keys, err = c.repo.ProcessedBatchKeys(ctx)
		return err
	})
	if err != nil {
		return c.storeError(err, "load processed batches")
	}

	processed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		processed[key] = struct{}{}
	}

	c.mu.Lock()
	c.processed = processed
	c.mu.Unlock()

	c.logger.Info("loaded processed batch ledger", slog.Int("batches", len(keys)))
	return nil
}

func (c *BatchIngestionCoordinator) isProcessed(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.processed[key]
	return ok
}

func (c *BatchIngestionCoordinator) markProcessed(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processed[key] = struct{}{}
	c.status.LastBatchKey = key
}

func (c *BatchIngestionCoordinator) completeCycle(err error) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.status.Cycles++
	c.status.LastCycleAt = &now
	c.status.LastError = ""
	if err != nil {
		c.status.LastError = err.Error()
	}
}

func (c *BatchIngestionCoordinator) recordError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.LastError = err.Error()
}

// Status returns a consistent copy of the loop's progress.
func (c *BatchIngestionCoordinator) Status() models.PipelineStatus {
	c.mu.RLock()
	status := c.status
	status.ProcessedBatches = len(c.processed)
	c.mu.RUnlock()

	status.NextDetectionIndex = c.batcher.NextIndex()
	status.PendingDetections = c.batcher.Pending()
	return status
}
