package services

import (
	"context"
	"fmt"
	"sync"

	"bankpulse/internal/models"
)

const DefaultDetectionBatchSize = 50

// DetectionBatcher groups detection events into fixed-size batches and writes
// each full batch to the sink under a monotonically increasing index. A failed
// write keeps the pending events and the index unchanged, so the next flush
// retries the same batch.
type DetectionBatcher struct {
	mu        sync.Mutex
	sink      DetectionSinkInterface
	batchSize int
	pending   []models.DetectionEvent
	nextIndex int
	metrics   MetricsRecorderInterface
	logger    PipelineLoggerInterface
}

func NewDetectionBatcher(
	sink DetectionSinkInterface,
	batchSize int,
	startIndex int,
	metrics MetricsRecorderInterface,
	logger PipelineLoggerInterface,
) DetectionBatcherInterface {
	if batchSize <= 0 {
		batchSize = DefaultDetectionBatchSize
	}
	return &DetectionBatcher{
		sink:      sink,
		batchSize: batchSize,
		pending:   make([]models.DetectionEvent, 0, batchSize),
		nextIndex: startIndex,
		metrics:   metrics,
		logger:    logger,
	}
}

// Add appends event and flushes once batchSize events are pending.
func (b *DetectionBatcher) Add(ctx context.Context, event models.DetectionEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = append(b.pending, event)
	b.metrics.RecordGauge("detections.pending", float64(len(b.pending)), nil)

	for len(b.pending) >= b.batchSize {
		if err := b.flushLocked(ctx, b.batchSize); err != nil {
			return err
		}
	}

	return nil
}

// AddAll appends events and then flushes every full batch. On a sink failure
// all events stay pending.
func (b *DetectionBatcher) AddAll(ctx context.Context, events []models.DetectionEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = append(b.pending, events...)
	b.metrics.RecordGauge("detections.pending", float64(len(b.pending)), nil)

	for len(b.pending) >= b.batchSize {
		if err := b.flushLocked(ctx, b.batchSize); err != nil {
			return err
		}
	}

	return nil
}

// ForceFlush writes every pending event in batches of at most batchSize. It is a no-op when
// nothing is pending.
func (b *DetectionBatcher) ForceFlush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for len(b.pending) > 0 {
		size := len(b.pending)
		if size > b.batchSize {
			size = b.batchSize
		}
		if err := b.flushLocked(ctx, size); err != nil {
			return err
		}
	}

	return nil
}

func (b *DetectionBatcher) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *DetectionBatcher) NextIndex() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nextIndex
}

func (b *DetectionBatcher) flushLocked(ctx context.Context, size int) error {
	batch := make([]models.DetectionEvent, size)
	copy(batch, b.pending[:size])

	if err := b.sink.Write(ctx, b.nextIndex, batch); err != nil {
		b.logger.LogDetectionFlushFailed(ctx, b.nextIndex, len(b.pending), err.Error())
		return fmt.Errorf("failed to write detection batch %d: %w", b.nextIndex, err)
	}

	b.logger.LogDetectionBatchFlushed(ctx, b.nextIndex, size)
	b.metrics.IncrementCounter("detection.batch.flushed", nil)

	b.pending = append(b.pending[:0], b.pending[size:]...)
	b.nextIndex++
	b.metrics.RecordGauge("detections.pending", float64(len(b.pending)), nil)

	return nil
}
