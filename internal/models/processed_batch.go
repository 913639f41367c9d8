package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BatchStatusApplied  = "applied"
	BatchStatusRejected = "rejected"
)

// ProcessedBatch is one entry of the processed-batch ledger. A batch key is
// written in the same database transaction as the aggregates it produced.
type ProcessedBatch struct {
	BatchKey      string    `gorm:"type:varchar(512);primaryKey" json:"batch_key"`
	Status        string    `gorm:"type:varchar(20);not null;default:'applied';index" json:"status"`
	RecordCount   int       `gorm:"not null;default:0" json:"record_count"`
	ErrorMessage  string    `gorm:"type:text" json:"error_message,omitempty"`
	CorrelationID string    `gorm:"type:varchar(36)" json:"correlation_id,omitempty"`
	ProcessedAt   time.Time `gorm:"not null;index" json:"processed_at"`
}

func (*ProcessedBatch) TableName() string {
	return "processed_batches"
}

func (b *ProcessedBatch) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BatchStatusApplied
	}
	if b.ProcessedAt.IsZero() {
		b.ProcessedAt = time.Now().UTC()
	}
	return nil
}

func (b *ProcessedBatch) IsRejected() bool {
	return b.Status == BatchStatusRejected
}
