package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bankpulse/internal/blobstore"
	"bankpulse/internal/config"
	"bankpulse/internal/database"
	"bankpulse/internal/handlers"
	"bankpulse/internal/middleware"
	"bankpulse/internal/models"
	"bankpulse/internal/rabbitmq"
	"bankpulse/internal/repositories"
	"bankpulse/internal/services"
	"bankpulse/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const serverShutdownTimeout = 30 * time.Second

func detectCmd() *cobra.Command {
	var serveAPI bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Poll for transaction batches, update aggregates and emit detections",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			return runDetect(cmd.Context(), cfg, logger, serveAPI)
		},
	}

	cmd.Flags().BoolVar(&serveAPI, "serve", true, "serve the ops API (/health, /metrics, /api/v1) alongside the loop")

	return cmd
}

func runDetect(ctx context.Context, cfg *config.Config, logger *slog.Logger, serveAPI bool) error {
	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open blob store: %w", err)
	}

	importance, err := services.LoadImportanceIndexFromStore(ctx, store, cfg.Storage.ImportanceKey)
	if err != nil {
		return err
	}
	logger.Info("importance index loaded",
		slog.String("key", cfg.Storage.ImportanceKey),
		slog.Int("entries", importance.Len()),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewPrometheusMetrics(reg)
	events := services.NewPipelineLogger(logger)

	retrier := services.NewRetrier(services.RetryPolicy{
		MaxAttempts: cfg.Detection.RetryMaxAttempts,
		BaseDelay:   cfg.Detection.RetryBaseDelay,
	}, metrics, events)

	sink, closeSink, err := openDetectionSink(cfg, store, logger)
	if err != nil {
		return err
	}
	defer closeSink()
	sink = services.NewRetryingSink(sink, retrier)

	startIndex, err := sink.NextBatchIndex(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume detection batch index: %w", err)
	}
	batcher := services.NewDetectionBatcher(sink, cfg.Detection.BatchSize, startIndex, metrics, events)

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Detection.BreakerMaxFailures,
		ResetTimeout:    cfg.Detection.BreakerReset,
		HalfOpenMaxSucc: 1,
		OnStateChange: func(from, to models.CircuitBreakerState) {
			events.LogCircuitBreakerStateChange(ctx, "aggregate_store", services.StateName(from), services.StateName(to))
			metrics.RecordGauge("circuit_breaker.state", float64(to), map[string]string{"service": "aggregate_store"})
		},
	})

	repo := repositories.NewAggregateRepository(db.DB)
	coordinator := services.NewBatchIngestionCoordinator(
		store,
		services.NewBatchReader(store, validation.GetValidator()),
		repo,
		services.NewPatternDetector(importance),
		batcher,
		breaker,
		retrier,
		metrics,
		events,
		services.CoordinatorConfig{
			ChunkPrefix:  cfg.Storage.ChunkPrefix,
			ChunkSuffix:  cfg.Storage.ChunkSuffix,
			PollInterval: cfg.Detection.PollInterval,
		},
	)

	logger.Info("detection loop starting",
		slog.String("chunk_prefix", cfg.Storage.ChunkPrefix),
		slog.String("detection_sink", cfg.Detection.Sink),
		slog.Int("next_detection_index", startIndex),
		slog.Duration("poll_interval", cfg.Detection.PollInterval),
	)

	if !serveAPI {
		return coordinator.Run(ctx)
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)
	server := &http.Server{
		Addr: cfg.Server.Address(),
		Handler: handlers.NewServer(handlers.ServerDeps{
			Logger:      logger,
			Repository:  repo,
			Status:      coordinator,
			RateLimiter: limiter,
			Registerer:  reg,
			Gatherer:    reg,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return runWithServer(ctx, logger, server, limiter, coordinator.Run)
}

// runWithServer serves the ops API while run executes, and shuts the server
// down once run returns.
func runWithServer(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	limiter *middleware.RateLimiter,
	run func(ctx context.Context) error,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go limiter.RunCleanup(ctx)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("ops API listening", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			cancel()
		}
	}()

	runErr := run(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops API forced to shutdown", slog.String("error", err.Error()))
	}

	select {
	case err := <-serverErr:
		return fmt.Errorf("ops API failed: %w", err)
	default:
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	logger.Info("detection loop stopped")
	return nil
}

func openDetectionSink(cfg *config.Config, store blobstore.Store, logger *slog.Logger) (services.DetectionSinkInterface, func(), error) {
	if cfg.Detection.Sink != config.SinkAMQP {
		return services.NewBlobDetectionSink(store, cfg.Storage.DetectionPrefix), func() {}, nil
	}

	publisher, err := rabbitmq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect detection publisher: %w", err)
	}
	closeFn := func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("failed to close detection publisher", slog.String("error", err.Error()))
		}
	}
	return services.NewAMQPDetectionSink(publisher), closeFn, nil
}
