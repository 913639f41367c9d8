package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"bankpulse/internal/blobstore"
	"bankpulse/internal/blobstore/blobstore_mocks"
	"bankpulse/internal/validation"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchHeader = "step,customer,age,gender,zipcodeOri,merchant,zipMerchant,category,amount,fraud\n"

func TestParseBatch_QuotedRows(t *testing.T) {
	input := batchHeader +
		"0,'C1093826151','4','M','28007','M348934600','28007','es_transportation',4.55,0\n" +
		"1,'C352968107','2','F','28007','M348934600','28007','es_health',39.68,1\n"

	records, err := ParseBatch(strings.NewReader(input), validation.GetValidator())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, 0, first.Step)
	assert.Equal(t, "C1093826151", first.CustomerName)
	assert.Equal(t, "4", first.Age)
	assert.Equal(t, "M", first.Gender)
	assert.Equal(t, "M348934600", first.MerchantID)
	assert.Equal(t, "es_transportation", first.TransactionType)
	assert.True(t, decimal.RequireFromString("4.55").Equal(first.Amount))
	assert.False(t, first.Fraud)

	assert.Equal(t, "F", records[1].Gender)
	assert.True(t, records[1].Fraud)
}

func TestParseBatch_WithoutHeader(t *testing.T) {
	input := "3,C1,2,U,28007,M1,28007,es_food,10.00,0\n"

	records, err := ParseBatch(strings.NewReader(input), validation.GetValidator())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].Step)
}

func TestParseBatch_Empty(t *testing.T) {
	records, err := ParseBatch(strings.NewReader(batchHeader), validation.GetValidator())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseBatch_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		row   string
		inErr string
	}{
		{name: "missing column", row: "0,C1,2,M,28007,M1,28007,es_food,10.00\n", inErr: "expected 10 columns"},
		{name: "bad amount", row: "0,C1,2,M,28007,M1,28007,es_food,ten,0\n", inErr: "invalid amount"},
		{name: "bad step", row: "x,C1,2,M,28007,M1,28007,es_food,1.00,0\n", inErr: "line 2"},
		{name: "negative amount", row: "0,C1,2,M,28007,M1,28007,es_food,-1.00,0\n", inErr: "amount"},
		{name: "missing merchant", row: "0,C1,2,M,28007,'',28007,es_food,1.00,0\n", inErr: "merchant"},
		{name: "negative step", row: "-1,C1,2,M,28007,M1,28007,es_food,1.00,0\n", inErr: "step"},
		{
			name:  "customer longer than the column",
			row:   "0," + strings.Repeat("C", 65) + ",2,M,28007,M1,28007,es_food,1.00,0\n",
			inErr: "customer: must be at most 64 characters",
		},
		{
			name:  "merchant longer than the column",
			row:   "0,C1,2,M,28007," + strings.Repeat("M", 65) + ",28007,es_food,1.00,0\n",
			inErr: "merchant: must be at most 64 characters",
		},
		{
			name:  "amount beyond the column precision",
			row:   "0,C1,2,M,28007,M1,28007,es_food,1000000000000000000,0\n",
			inErr: "amount: must be less than",
		},
		{
			name:  "amount with more than two decimals",
			row:   "0,C1,2,M,28007,M1,28007,es_food,4.555,0\n",
			inErr: "amount: must have at most 2 decimal places",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBatch(strings.NewReader(batchHeader+tt.row), validation.GetValidator())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedBatch)
			assert.Contains(t, err.Error(), tt.inErr)
		})
	}
}

func TestParseBatch_AcceptsColumnLimits(t *testing.T) {
	row := "0," + strings.Repeat("C", 64) + ",2,M,28007," + strings.Repeat("M", 64) + ",28007,es_food,999999999999.99,0\n"

	records, err := ParseBatch(strings.NewReader(batchHeader+row), validation.GetValidator())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "999999999999.99", records[0].Amount.String())
}

func TestBatchReader_Read(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemStore()
	body := batchHeader + "0,C1,2,M,28007,M1,28007,es_food,12.50,0\n"
	require.NoError(t, store.Put(ctx, "chunks/chunk_00000.csv", bytes.NewBufferString(body)))

	reader := NewBatchReader(store, nil)

	records, err := reader.Read(ctx, "chunks/chunk_00000.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "C1", records[0].CustomerName)

	_, err = reader.Read(ctx, "chunks/chunk_00001.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
	assert.NotErrorIs(t, err, ErrMalformedBatch)
}

func TestBatchReader_StoreErrorIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := blobstore_mocks.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), "chunks/chunk_00000.csv").Return(nil, errors.New("connection reset"))

	_, err := NewBatchReader(store, validation.GetValidator()).Read(context.Background(), "chunks/chunk_00000.csv")
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
}
