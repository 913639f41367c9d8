package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  TransactionRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: TransactionRecord{
				CustomerName: "C1093826151",
				MerchantID:   "M348934600",
				Amount:       decimal.NewFromFloat(4.55),
			},
		},
		{
			name: "zero amount is allowed",
			record: TransactionRecord{
				CustomerName: "C1093826151",
				MerchantID:   "M348934600",
				Amount:       decimal.Zero,
			},
		},
		{
			name: "negative amount",
			record: TransactionRecord{
				CustomerName: "C1093826151",
				MerchantID:   "M348934600",
				Amount:       decimal.NewFromFloat(-1),
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "missing merchant",
			record: TransactionRecord{
				CustomerName: "C1093826151",
				Amount:       decimal.NewFromFloat(1),
			},
			wantErr: ErrMissingMerchant,
		},
		{
			name: "blank customer",
			record: TransactionRecord{
				CustomerName: "   ",
				MerchantID:   "M348934600",
				Amount:       decimal.NewFromFloat(1),
			},
			wantErr: ErrMissingCustomer,
		},
		{
			name: "customer longer than the column",
			record: TransactionRecord{
				CustomerName: strings.Repeat("C", 65),
				MerchantID:   "M348934600",
				Amount:       decimal.NewFromFloat(1),
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "merchant at the column limit",
			record: TransactionRecord{
				CustomerName: "C1093826151",
				MerchantID:   strings.Repeat("M", 64),
				Amount:       decimal.NewFromFloat(1),
			},
		},
		{
			name: "amount with three decimal places",
			record: TransactionRecord{
				CustomerName: "C1093826151",
				MerchantID:   "M348934600",
				Amount:       decimal.RequireFromString("0.005"),
			},
			wantErr: ErrAmountPrecision,
		},
		{
			name: "amount at the ceiling",
			record: TransactionRecord{
				CustomerName: "C1093826151",
				MerchantID:   "M348934600",
				Amount:       decimal.RequireFromString("1000000000000"),
			},
			wantErr: ErrAmountTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransactionRecord_NormalizedGender(t *testing.T) {
	cases := map[string]string{
		"M": GenderMale,
		"F": GenderFemale,
		"E": GenderUnknown,
		"U": GenderUnknown,
		"":  GenderUnknown,
		"m": GenderUnknown,
	}

	for raw, want := range cases {
		record := TransactionRecord{Gender: raw}
		assert.Equal(t, want, record.NormalizedGender(), "gender %q", raw)
	}
}

func TestTrimQuoted(t *testing.T) {
	assert.Equal(t, "C1093826151", TrimQuoted("'C1093826151'"))
	assert.Equal(t, "es_transportation", TrimQuoted(" 'es_transportation' "))
	assert.Equal(t, "M", TrimQuoted("M"))
	assert.Equal(t, "'", TrimQuoted("'"))
	assert.Equal(t, "", TrimQuoted("''"))
}

func TestFoldRecords_Transactions(t *testing.T) {
	records := []TransactionRecord{
		{CustomerName: "C1", MerchantID: "M1", Gender: "M", Amount: decimal.NewFromFloat(10.25)},
		{CustomerName: "C1", MerchantID: "M1", Gender: "F", Amount: decimal.NewFromFloat(5.50)},
		{CustomerName: "C2", MerchantID: "M1", Gender: "E", Amount: decimal.NewFromFloat(1)},
		{CustomerName: "C1", MerchantID: "M2", Gender: "F", Amount: decimal.NewFromFloat(2)},
	}

	delta := FoldRecords(records)

	assert.Equal(t, 4, delta.Records)
	assert.Equal(t, int64(3), delta.MerchantCounts["M1"])
	assert.Equal(t, int64(1), delta.MerchantCounts["M2"])

	c1m1 := delta.Summaries[SummaryKey{MerchantID: "M1", CustomerName: "C1"}]
	assert.Equal(t, int64(2), c1m1.TxnCount)
	assert.True(t, c1m1.TotalValue.Equal(decimal.NewFromFloat(15.75)))

	assert.Equal(t, GenderDelta{MaleCount: 1, FemaleCount: 1}, delta.Genders["M1"])
	assert.Equal(t, GenderDelta{FemaleCount: 1}, delta.Genders["M2"])

	keys := delta.SortedSummaryKeys()
	require.Len(t, keys, 3)
	assert.Equal(t, SummaryKey{MerchantID: "M1", CustomerName: "C1"}, keys[0])
	assert.Equal(t, SummaryKey{MerchantID: "M1", CustomerName: "C2"}, keys[1])
	assert.Equal(t, SummaryKey{MerchantID: "M2", CustomerName: "C1"}, keys[2])
	assert.Equal(t, []string{"M1", "M2"}, delta.SortedMerchants())
}

func TestTxnSummary_AverageValue_Transactions(t *testing.T) {
	summary := TxnSummary{TxnCount: 80, TotalValue: decimal.NewFromInt(1000)}
	assert.True(t, summary.AverageValue().Equal(decimal.NewFromFloat(12.5)))

	empty := TxnSummary{}
	assert.True(t, empty.AverageValue().IsZero())
}

func TestDetectionEvent_CSVRecord(t *testing.T) {
	evaluatedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	event := NewDetectionEvent(PatternDEINeeded, ActionDEINeeded, "", "M1", evaluatedAt)

	record := event.CSVRecord()

	require.Len(t, record, len(DetectionEventHeader))
	assert.Equal(t, "2025-03-01 15:30:00", record[0])
	assert.Equal(t, record[0], record[1])
	assert.Equal(t, "PatId3", record[2])
	assert.Equal(t, "DEI-NEEDED", record[3])
	assert.Equal(t, "", record[4])
	assert.Equal(t, "M1", record[5])
}

func TestNewDetectionMessage(t *testing.T) {
	evaluatedAt := time.Date(2025, 3, 1, 18, 45, 10, 0, time.UTC)
	events := []DetectionEvent{
		NewDetectionEvent(PatternChild, ActionChild, "C1", "M1", evaluatedAt),
	}

	msg := NewDetectionMessage(7, events)

	assert.Equal(t, 7, msg.BatchIndex)
	require.Len(t, msg.Events, 1)
	assert.Equal(t, "2025-03-02 00:15:10", msg.Events[0].YStartTime)
	assert.Equal(t, "CHILD", msg.Events[0].ActionType)
}
