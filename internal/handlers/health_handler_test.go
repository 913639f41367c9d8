package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bankpulse/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", wantStatus: http.StatusOK, wantBody: `"status":"healthy"`},
		{name: "database down", pingErr: errors.New("dial tcp: connection refused"), wantStatus: http.StatusServiceUnavailable, wantBody: "SYSTEM_003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockAggregateRepositoryInterface(ctrl)
			repo.EXPECT().HealthCheck(gomock.Any()).Return(tt.pingErr)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(TraceIDContextKey, "trace-123")

			err := NewHealthCheckHandler(repo, discardLogger()).HealthCheck(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.pingErr != nil {
				assert.Contains(t, rec.Body.String(), "trace-123")
				assert.NotContains(t, rec.Body.String(), "connection refused")
			}
		})
	}
}
