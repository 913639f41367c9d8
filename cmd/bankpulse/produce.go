package main

import (
	"fmt"
	"log/slog"
	"os"

	"bankpulse/internal/services"

	"github.com/spf13/cobra"
)

func produceCmd() *cobra.Command {
	var (
		startIndex int
		chunkSize  int
	)

	cmd := &cobra.Command{
		Use:   "produce [transactions.csv]",
		Short: "Split a transactions CSV into chunk batches and upload them",
		Long: `Split a transactions CSV into fixed-size chunks and upload each one as
{CHUNK_PREFIX}/chunk_{index}.csv, waiting PRODUCER_UPLOAD_DELAY between uploads.

Examples:
  bankpulse produce data/transactions.csv
  bankpulse produce data/transactions.csv --chunk-size 500 --start-index 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if chunkSize <= 0 {
				chunkSize = cfg.Producer.ChunkSize
			}

			ctx := cmd.Context()
			store, err := openStore(ctx, cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to open blob store: %w", err)
			}

			source, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open source: %w", err)
			}
			defer source.Close()

			producer := services.NewBatchProducer(store, cfg.Storage.ChunkPrefix, chunkSize, cfg.Producer.UploadDelay).
				WithStartIndex(startIndex)

			chunks, err := producer.Produce(ctx, source)
			if err != nil {
				return err
			}

			logger.Info("upload complete",
				slog.String("source", args[0]),
				slog.Int("chunks", chunks),
				slog.String("chunk_prefix", cfg.Storage.ChunkPrefix),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&startIndex, "start-index", 0, "index of the first chunk")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "rows per chunk (default PRODUCER_CHUNK_SIZE)")

	return cmd
}
