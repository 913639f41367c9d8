package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MerchantTxnCount is the running number of transactions seen for a merchant.
type MerchantTxnCount struct {
	MerchantID string    `gorm:"type:varchar(64);primaryKey" json:"merchant_id"`
	TxnCount   int64     `gorm:"not null" json:"txn_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (*MerchantTxnCount) TableName() string {
	return "merchant_txn_count"
}

// TxnSummary aggregates every transaction of one customer at one merchant.
type TxnSummary struct {
	MerchantID   string          `gorm:"type:varchar(64);primaryKey" json:"merchant_id"`
	CustomerName string          `gorm:"type:varchar(64);primaryKey" json:"customer_name"`
	TxnCount     int64           `gorm:"not null" json:"txn_count"`
	TotalValue   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total_value"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (*TxnSummary) TableName() string {
	return "txn_summary"
}

// AverageValue returns TotalValue / TxnCount, or zero for an empty summary.
func (s *TxnSummary) AverageValue() decimal.Decimal {
	if s.TxnCount <= 0 {
		return decimal.Zero
	}
	return s.TotalValue.Div(decimal.NewFromInt(s.TxnCount))
}

// GenderStats counts male and female transactions per merchant.
type GenderStats struct {
	MerchantID  string    `gorm:"type:varchar(64);primaryKey" json:"merchant_id"`
	MaleCount   int64     `gorm:"not null" json:"male_count"`
	FemaleCount int64     `gorm:"not null" json:"female_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (*GenderStats) TableName() string {
	return "gender_stats"
}

// AggregateSnapshot is a point-in-time read of all three aggregate tables,
// each ordered by merchant and then customer.
type AggregateSnapshot struct {
	MerchantCounts []MerchantTxnCount
	Summaries      []TxnSummary
	GenderStats    []GenderStats
}

// SummariesByMerchant groups the snapshot's summaries, preserving order.
func (s *AggregateSnapshot) SummariesByMerchant() map[string][]TxnSummary {
	grouped := make(map[string][]TxnSummary)
	for _, summary := range s.Summaries {
		grouped[summary.MerchantID] = append(grouped[summary.MerchantID], summary)
	}
	return grouped
}
