package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"bankpulse/internal/blobstore"
)

// ChunkKey returns the blob key of chunk index under prefix. The index is
// zero padded so lexical order matches production order.
func ChunkKey(prefix string, index int) string {
	return blobstore.JoinKey(prefix, fmt.Sprintf("chunk_%05d.csv", index))
}

// BatchProducer splits a transactions CSV into fixed-size chunks and uploads
// each chunk, header included, as its own batch.
type BatchProducer struct {
	store       blobstore.Store
	prefix      string
	chunkSize   int
	uploadDelay time.Duration
	startIndex  int
	logger      *slog.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewBatchProducer(store blobstore.Store, prefix string, chunkSize int, uploadDelay time.Duration) *BatchProducer {
	if chunkSize <= 0 {
		chunkSize = 10000
	}
	return &BatchProducer{
		store:       store,
		prefix:      prefix,
		chunkSize:   chunkSize,
		uploadDelay: uploadDelay,
		logger:      slog.Default(),
		sleep:       sleepContext,
	}
}

// WithStartIndex makes the first uploaded chunk use index instead of 0.
func (p *BatchProducer) WithStartIndex(index int) *BatchProducer {
	p.startIndex = index
	return p
}

// Produce returns the number of chunks uploaded.
func (p *BatchProducer) Produce(ctx context.Context, source io.Reader) (int, error) {
	reader := csv.NewReader(source)
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read source header: %w", err)
	}

	chunks := 0
	rows := make([][]string, 0, p.chunkSize)

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return chunks, fmt.Errorf("failed to read source row: %w", err)
		}

		rows = append(rows, fields)
		if len(rows) < p.chunkSize {
			continue
		}

		if err := p.upload(ctx, chunks, header, rows); err != nil {
			return chunks, err
		}
		chunks++
		rows = rows[:0]
	}

	if len(rows) > 0 {
		if err := p.upload(ctx, chunks, header, rows); err != nil {
			return chunks, err
		}
		chunks++
	}

	return chunks, nil
}

func (p *BatchProducer) upload(ctx context.Context, chunk int, header []string, rows [][]string) error {
	if chunk > 0 && p.uploadDelay > 0 {
		if err := p.sleep(ctx, p.uploadDelay); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to encode chunk header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to encode chunk %d: %w", chunk, err)
	}

	key := ChunkKey(p.prefix, p.startIndex+chunk)
	if err := p.store.Put(ctx, key, bytes.NewReader(buf.Bytes())); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Info("uploaded chunk",
		slog.String("key", key),
		slog.Int("rows", len(rows)),
	)

	return nil
}
