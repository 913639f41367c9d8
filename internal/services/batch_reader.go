package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bankpulse/internal/blobstore"
	"bankpulse/internal/models"
	"bankpulse/internal/validation"

	"github.com/shopspring/decimal"
)

// BatchColumns is the column order of a transaction batch.
var BatchColumns = []string{
	"step", "customer", "age", "gender", "zipcodeOri",
	"merchant", "zipMerchant", "category", "amount", "fraud",
}

type BatchReader struct {
	store     blobstore.Store
	validator *validation.Validator
}

func NewBatchReader(store blobstore.Store, validator *validation.Validator) BatchReaderInterface {
	if validator == nil {
		validator = validation.GetValidator()
	}
	return &BatchReader{
		store:     store,
		validator: validator,
	}
}

// Read fetches key and parses it. Parse failures wrap ErrMalformedBatch; store
// failures are returned as is so the caller can retry them.
func (r *BatchReader) Read(ctx context.Context, key string) ([]models.TransactionRecord, error) {
	body, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return ParseBatch(body, r.validator)
}

// ParseBatch decodes a batch CSV. A leading header row is skipped.
func ParseBatch(r io.Reader, validator *validation.Validator) ([]models.TransactionRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	var records []models.TransactionRecord
	line := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedBatch, line, err)
		}
		if len(fields) != len(BatchColumns) {
			return nil, fmt.Errorf("%w: line %d: expected %d columns, got %d",
				ErrMalformedBatch, line, len(BatchColumns), len(fields))
		}
		if line == 1 && isHeaderRow(fields) {
			continue
		}

		record, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedBatch, line, err)
		}
		if err := validator.Struct(record); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedBatch, line, err)
		}
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedBatch, line, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func isHeaderRow(fields []string) bool {
	return strings.EqualFold(models.TrimQuoted(fields[0]), BatchColumns[0])
}

func parseRecord(fields []string) (models.TransactionRecord, error) {
	step, err := strconv.Atoi(models.TrimQuoted(fields[0]))
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("invalid step %q", fields[0])
	}

	amount, err := decimal.NewFromString(models.TrimQuoted(fields[8]))
	if err != nil {
		return models.TransactionRecord{}, fmt.Errorf("invalid amount %q", fields[8])
	}

	return models.TransactionRecord{
		Step:            step,
		CustomerName:    models.TrimQuoted(fields[1]),
		Age:             models.TrimQuoted(fields[2]),
		Gender:          models.TrimQuoted(fields[3]),
		ZipcodeOrigin:   models.TrimQuoted(fields[4]),
		MerchantID:      models.TrimQuoted(fields[5]),
		ZipMerchant:     models.TrimQuoted(fields[6]),
		TransactionType: models.TrimQuoted(fields[7]),
		Amount:          amount,
		Fraud:           parseFlag(fields[9]),
	}, nil
}
