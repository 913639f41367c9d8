package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bankpulse/internal/repositories"
)

const defaultMaxBackoff = 30 * time.Second

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 4,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    defaultMaxBackoff,
	}
}

// Backoff returns BaseDelay * 2^attempt, capped at MaxDelay.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	maxDelay := p.MaxDelay
	if maxDelay <= 0 {
		maxDelay = defaultMaxBackoff
	}
	if attempt > 30 {
		return maxDelay
	}

	delay := p.BaseDelay * time.Duration(1<<attempt)
	if delay > maxDelay || delay < 0 {
		return maxDelay
	}
	return delay
}

// IsRetryable reports whether err is worth another attempt. Malformed input,
// data the store refused, already applied batches and cancellation are final.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrMalformedBatch),
		errors.Is(err, repositories.ErrBatchAlreadyApplied),
		errors.Is(err, repositories.ErrInvalidData),
		errors.Is(err, ErrCircuitBreakerOpen),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return true
	}
}

// Retrier runs an operation until it succeeds, fails permanently, or runs out
// of attempts, sleeping with exponential backoff in between.
type Retrier struct {
	policy  RetryPolicy
	metrics MetricsRecorderInterface
	logger  PipelineLoggerInterface
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewRetrier(policy RetryPolicy, metrics MetricsRecorderInterface, logger PipelineLoggerInterface) *Retrier {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	return &Retrier{
		policy:  policy,
		metrics: metrics,
		logger:  logger,
		sleep:   sleepContext,
	}
}

func (r *Retrier) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < r.policy.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err

		if attempt == r.policy.MaxAttempts-1 {
			break
		}

		backoff := r.policy.Backoff(attempt)
		r.logger.LogRetryAttempt(ctx, operation, attempt+1, r.policy.MaxAttempts, backoff.Milliseconds(), err.Error())
		r.metrics.IncrementCounter("retry.attempt", map[string]string{
			"operation": operation,
		})

		if err := r.sleep(ctx, backoff); err != nil {
			return fmt.Errorf("%s interrupted: %w", operation, err)
		}
	}

	return fmt.Errorf("%s: %w: %w", operation, ErrMaxRetriesExceeded, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
