package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"bankpulse/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPipelineLogger() PipelineLoggerInterface {
	return NewPipelineLogger(discardLogger())
}

func testMetrics() MetricsRecorderInterface {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}

// fastRetrier never sleeps between attempts.
func fastRetrier(attempts int) *Retrier {
	r := NewRetrier(RetryPolicy{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    time.Millisecond,
	}, testMetrics(), testPipelineLogger())
	r.sleep = func(ctx context.Context, d time.Duration) error {
		return ctx.Err()
	}
	return r
}

func txn(merchantID, customerName, gender string, amount string) models.TransactionRecord {
	return models.TransactionRecord{
		CustomerName:    customerName,
		Age:             "2",
		Gender:          gender,
		ZipcodeOrigin:   "28007",
		MerchantID:      merchantID,
		ZipMerchant:     "28007",
		TransactionType: "es_transportation",
		Amount:          decimal.RequireFromString(amount),
	}
}

func detectionEvents(n int, at time.Time) []models.DetectionEvent {
	events := make([]models.DetectionEvent, n)
	for i := range events {
		events[i] = models.NewDetectionEvent(models.PatternChild, models.ActionChild,
			"C"+decimal.NewFromInt(int64(i)).String(), "M1", at)
	}
	return events
}

type stubImportance map[string]float64

func (s stubImportance) Lookup(customerName, transactionType string) float64 {
	return s[customerName]
}
