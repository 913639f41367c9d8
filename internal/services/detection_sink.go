package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"

	"bankpulse/internal/blobstore"
	"bankpulse/internal/models"
)

var detectionKeyPattern = regexp.MustCompile(`detection_(\d+)\.csv$`)

// BlobDetectionSink writes each detection batch as a CSV file under prefix.
type BlobDetectionSink struct {
	store  blobstore.Store
	prefix string
}

func NewBlobDetectionSink(store blobstore.Store, prefix string) DetectionSinkInterface {
	return &BlobDetectionSink{
		store:  store,
		prefix: prefix,
	}
}

// DetectionKey returns the blob key of detection batch index under prefix.
func DetectionKey(prefix string, index int) string {
	return blobstore.JoinKey(prefix, fmt.Sprintf("detection_%d.csv", index))
}

func (s *BlobDetectionSink) Write(ctx context.Context, index int, events []models.DetectionEvent) error {
	body, err := EncodeDetectionCSV(events)
	if err != nil {
		return err
	}

	return s.store.Put(ctx, DetectionKey(s.prefix, index), bytes.NewReader(body))
}

// NextBatchIndex continues after the highest batch already in the store, so
// a restarted process never overwrites earlier detection files.
func (s *BlobDetectionSink) NextBatchIndex(ctx context.Context) (int, error) {
	keys, err := s.store.List(ctx, blobstore.JoinKey(s.prefix, "detection_"))
	if err != nil {
		return 0, fmt.Errorf("failed to list detection batches: %w", err)
	}

	next := 0
	for _, key := range keys {
		match := detectionKeyPattern.FindStringSubmatch(key)
		if match == nil {
			continue
		}
		index, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if index+1 > next {
			next = index + 1
		}
	}

	return next, nil
}

// EncodeDetectionCSV renders events with the detection header row.
func EncodeDetectionCSV(events []models.DetectionEvent) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(models.DetectionEventHeader); err != nil {
		return nil, fmt.Errorf("failed to write detection header: %w", err)
	}
	for i := range events {
		if err := w.Write(events[i].CSVRecord()); err != nil {
			return nil, fmt.Errorf("failed to write detection row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode detections: %w", err)
	}

	return buf.Bytes(), nil
}

// AMQPDetectionSink publishes each detection batch as one JSON message.
type AMQPDetectionSink struct {
	publisher DetectionPublisherInterface
}

func NewAMQPDetectionSink(publisher DetectionPublisherInterface) DetectionSinkInterface {
	return &AMQPDetectionSink{
		publisher: publisher,
	}
}

func (s *AMQPDetectionSink) Write(ctx context.Context, index int, events []models.DetectionEvent) error {
	return s.publisher.Publish(ctx, models.NewDetectionMessage(index, events))
}

// NextBatchIndex always starts at 0; published messages cannot be listed back.
func (s *AMQPDetectionSink) NextBatchIndex(ctx context.Context) (int, error) {
	return 0, nil
}

// RetryingSink retries failed writes of the wrapped sink with backoff.
type RetryingSink struct {
	sink    DetectionSinkInterface
	retrier *Retrier
}

func NewRetryingSink(sink DetectionSinkInterface, retrier *Retrier) DetectionSinkInterface {
	return &RetryingSink{
		sink:    sink,
		retrier: retrier,
	}
}

func (s *RetryingSink) Write(ctx context.Context, index int, events []models.DetectionEvent) error {
	return s.retrier.Do(ctx, "detection.write", func(ctx context.Context) error {
		return s.sink.Write(ctx, index, events)
	})
}

func (s *RetryingSink) NextBatchIndex(ctx context.Context) (int, error) {
	var next int
	err := s.retrier.Do(ctx, "detection.list", func(ctx context.Context) error {
		var err error
		next, err = s.sink.NextBatchIndex(ctx)
		return err
	})
	return next, err
}
