package dto

import (
	"time"

	"bankpulse/internal/models"
)

const (
	DefaultBatchPageSize = 50
	MaxBatchPageSize     = 500
)

// ListBatchesRequest is the query of GET /api/v1/batches.
type ListBatchesRequest struct {
	Offset int `query:"offset" json:"offset" validate:"gte=0"`
	Limit  int `query:"limit" json:"limit" validate:"gte=0,lte=500"`
}

type ProcessedBatch struct {
	BatchKey      string `json:"batchKey"`
	Status        string `json:"status"`
	RecordCount   int    `json:"recordCount"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
	ProcessedAt   string `json:"processedAt"`
}

type ListBatchesResponse struct {
	Batches []ProcessedBatch `json:"batches"`
	Total   int64            `json:"total"`
	Offset  int              `json:"offset"`
	Limit   int              `json:"limit"`
}

// PipelineStatusResponse is the body of GET /api/v1/status.
type PipelineStatusResponse struct {
	Cycles             int64   `json:"cycles"`
	ProcessedBatches   int     `json:"processedBatches"`
	LastBatchKey       string  `json:"lastBatchKey,omitempty"`
	LastCycleAt        *string `json:"lastCycleAt,omitempty"`
	NextDetectionIndex int     `json:"nextDetectionIndex"`
	PendingDetections  int     `json:"pendingDetections"`
	LastError          string  `json:"lastError,omitempty"`
}

func NewProcessedBatch(b *models.ProcessedBatch) ProcessedBatch {
	return ProcessedBatch{
		BatchKey:      b.BatchKey,
		Status:        b.Status,
		RecordCount:   b.RecordCount,
		ErrorMessage:  b.ErrorMessage,
		CorrelationID: b.CorrelationID,
		ProcessedAt:   b.ProcessedAt.UTC().Format(time.RFC3339),
	}
}

func NewPipelineStatusResponse(status models.PipelineStatus) PipelineStatusResponse {
	response := PipelineStatusResponse{
		Cycles:             status.Cycles,
		ProcessedBatches:   status.ProcessedBatches,
		LastBatchKey:       status.LastBatchKey,
		NextDetectionIndex: status.NextDetectionIndex,
		PendingDetections:  status.PendingDetections,
		LastError:          status.LastError,
	}
	if status.LastCycleAt != nil {
		at := status.LastCycleAt.UTC().Format(time.RFC3339)
		response.LastCycleAt = &at
	}
	return response
}
