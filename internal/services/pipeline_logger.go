package services

import (
	"context"
	"log/slog"
	"time"

	"bankpulse/internal/models"

	"github.com/google/uuid"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID returns ctx tagged with id for pipeline log events.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// NewCorrelationID returns ctx tagged with a fresh random id.
func NewCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return WithCorrelationID(ctx, id), id
}

type PipelineLogger struct {
	logger *slog.Logger
}

func NewPipelineLogger(logger *slog.Logger) PipelineLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineLogger{
		logger: logger,
	}
}

func (pl *PipelineLogger) LogBatchProcessingStarted(ctx context.Context, batchKey string) {
	pl.logger.InfoContext(ctx, "batch processing started",
		slog.String("event_type", "batch_processing_started"),
		slog.String("batch_key", batchKey),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogBatchProcessed(ctx context.Context, batchKey string, records int, detections int, durationMs int64) {
	pl.logger.InfoContext(ctx, "batch processed",
		slog.String("event_type", "batch_processed"),
		slog.String("batch_key", batchKey),
		slog.Int("records", records),
		slog.Int("detections", detections),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogBatchRejected(ctx context.Context, batchKey string, reason string) {
	pl.logger.WarnContext(ctx, "batch rejected",
		slog.String("event_type", "batch_rejected"),
		slog.String("batch_key", batchKey),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogBatchSkipped(ctx context.Context, batchKey string, reason string) {
	pl.logger.InfoContext(ctx, "batch skipped",
		slog.String("event_type", "batch_skipped"),
		slog.String("batch_key", batchKey),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogRetryAttempt(ctx context.Context, operation string, attempt, maxAttempts int, backoffMs int64, errorMsg string) {
	pl.logger.WarnContext(ctx, "retry attempt",
		slog.String("event_type", "batch_retry"),
		slog.String("operation", operation),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", maxAttempts),
		slog.Int64("backoff_ms", backoffMs),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogBatchDeferred(ctx context.Context, batchKey string, errorMsg string) {
	pl.logger.WarnContext(ctx, "batch deferred to next cycle",
		slog.String("event_type", "batch_deferred"),
		slog.String("batch_key", batchKey),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogDetectionBatchFlushed(ctx context.Context, index int, events int) {
	pl.logger.InfoContext(ctx, "detection batch uploaded",
		slog.String("event_type", "detection_batch_uploaded"),
		slog.Int("batch_index", index),
		slog.Int("events", events),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogDetectionFlushFailed(ctx context.Context, index int, pending int, errorMsg string) {
	pl.logger.WarnContext(ctx, "detection batch upload failed",
		slog.String("event_type", "detection_batch_failed"),
		slog.Int("batch_index", index),
		slog.Int("pending", pending),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	pl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}

func (pl *PipelineLogger) LogCycleCompleted(ctx context.Context, result *models.CycleResult, durationMs int64) {
	attrs := []slog.Attr{
		slog.String("event_type", "cycle_completed"),
		slog.Int("listed", result.Listed),
		slog.Int("applied", result.Applied),
		slog.Int("rejected", result.Rejected),
		slog.Int("skipped", result.Skipped),
		slog.Int("detections", result.Detections),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	}
	if result.DeferredBatchKey != "" {
		attrs = append(attrs, slog.String("deferred_batch_key", result.DeferredBatchKey))
	}

	level := slog.LevelDebug
	if result.Applied > 0 || result.Rejected > 0 || result.DeferredBatchKey != "" {
		level = slog.LevelInfo
	}
	pl.logger.LogAttrs(ctx, level, "cycle completed", attrs...)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
