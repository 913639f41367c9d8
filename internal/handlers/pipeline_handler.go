package handlers

import (
	"log/slog"
	"net/http"

	"bankpulse/internal/dto"
	"bankpulse/internal/errors"
	"bankpulse/internal/models"
	"bankpulse/internal/repositories"

	"github.com/labstack/echo/v4"
)

// StatusProvider is satisfied by the batch ingestion coordinator.
type StatusProvider interface {
	Status() models.PipelineStatus
}

// PipelineHandler exposes the detection loop's progress and ledger.
type PipelineHandler struct {
	status StatusProvider
	repo   repositories.AggregateRepositoryInterface
	logger *slog.Logger
}

func NewPipelineHandler(status StatusProvider, repo repositories.AggregateRepositoryInterface, logger *slog.Logger) *PipelineHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineHandler{
		status: status,
		repo:   repo,
		logger: logger,
	}
}

// GetStatus handles GET /api/v1/status.
func (h *PipelineHandler) GetStatus(c echo.Context) error {
	if h.status == nil {
		return SendError(c, errors.PipelineNotRunning)
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewPipelineStatusResponse(h.status.Status()),
	})
}

// ListBatches handles GET /api/v1/batches?offset=&limit=, newest first.
func (h *PipelineHandler) ListBatches(c echo.Context) error {
	var req dto.ListBatchesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("offset and limit must be integers"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if req.Limit == 0 {
		req.Limit = dto.DefaultBatchPageSize
	}

	batches, total, err := h.repo.ListProcessedBatches(c.Request().Context(), req.Offset, req.Limit)
	if err != nil {
		h.logger.Error("failed to list processed batches",
			slog.String("trace_id", getTraceID(c)),
			slog.String("error", err.Error()),
		)
		return SendSystemError(c, err)
	}

	response := dto.ListBatchesResponse{
		Batches: make([]dto.ProcessedBatch, 0, len(batches)),
		Total:   total,
		Offset:  req.Offset,
		Limit:   req.Limit,
	}
	for i := range batches {
		response.Batches = append(response.Batches, dto.NewProcessedBatch(&batches[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}
