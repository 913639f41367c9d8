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
)

const importanceColumns = 5

type importanceKey struct {
	customerName    string
	transactionType string
}

// ImportanceIndex maps (customer, transaction type) to the mean importance of
// the matching reference rows. It is immutable after construction.
type ImportanceIndex struct {
	means map[importanceKey]float64
}

func BuildImportanceIndex(rows []models.ImportanceRow) *ImportanceIndex {
	type accumulator struct {
		sum   float64
		count int
	}

	acc := make(map[importanceKey]*accumulator)
	for _, row := range rows {
		key := importanceKey{customerName: row.CustomerName, transactionType: row.TransactionType}
		a, ok := acc[key]
		if !ok {
			a = &accumulator{}
			acc[key] = a
		}
		a.sum += row.Importance
		a.count++
	}

	means := make(map[importanceKey]float64, len(acc))
	for key, a := range acc {
		means[key] = a.sum / float64(a.count)
	}

	return &ImportanceIndex{means: means}
}

// Lookup returns the mean importance, or 0 when the pair was never seen.
func (i *ImportanceIndex) Lookup(customerName, transactionType string) float64 {
	if i == nil {
		return 0
	}
	return i.means[importanceKey{customerName: customerName, transactionType: transactionType}]
}

func (i *ImportanceIndex) Len() int {
	if i == nil {
		return 0
	}
	return len(i.means)
}

// LoadImportanceIndex parses the customer importance CSV. Columns are
// customer, merchant, weight, transaction type, fraud; a header row is
// optional. Every failure wraps ErrReferenceDataLoad.
func LoadImportanceIndex(r io.Reader) (*ImportanceIndex, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []models.ImportanceRow
	line := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrReferenceDataLoad, line, err)
		}
		if len(fields) != importanceColumns {
			return nil, fmt.Errorf("%w: line %d: expected %d columns, got %d",
				ErrReferenceDataLoad, line, importanceColumns, len(fields))
		}

		weight, err := strconv.ParseFloat(models.TrimQuoted(fields[2]), 64)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("%w: line %d: invalid weight %q", ErrReferenceDataLoad, line, fields[2])
		}

		rows = append(rows, models.ImportanceRow{
			CustomerName:    models.TrimQuoted(fields[0]),
			MerchantID:      models.TrimQuoted(fields[1]),
			Importance:      weight,
			TransactionType: models.TrimQuoted(fields[3]),
			Fraud:           parseFlag(fields[4]),
		})
	}

	return BuildImportanceIndex(rows), nil
}

// LoadImportanceIndexFromStore reads the reference CSV stored under key.
func LoadImportanceIndexFromStore(ctx context.Context, store blobstore.Store, key string) (*ImportanceIndex, error) {
	body, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReferenceDataLoad, err)
	}
	defer body.Close()

	return LoadImportanceIndex(body)
}

func parseFlag(value string) bool {
	value = strings.ToLower(models.TrimQuoted(value))
	switch value {
	case "1", "true", "t", "yes":
		return true
	default:
		return false
	}
}
