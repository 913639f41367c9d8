package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bankpulse/internal/services"

	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	var (
		count     int
		seed      uint64
		customers int
		merchants int
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic BankSim-shaped dataset for local runs",
		Long: `Write transactions.csv and CustomerImportance.csv into --out.
The transactions file can be fed to "bankpulse produce"; the importance file is
the reference data "bankpulse detect" loads from IMPORTANCE_KEY.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			generatorConfig := services.DefaultGeneratorConfig()
			generatorConfig.Seed = seed
			if customers > 0 {
				generatorConfig.Customers = customers
			}
			if merchants > 0 {
				generatorConfig.Merchants = merchants
			}

			generator := services.NewTransactionGenerator(generatorConfig)
			records := generator.Generate(count)

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			transactionsPath := filepath.Join(outDir, "transactions.csv")
			if err := writeFile(transactionsPath, func(f *os.File) error {
				return generator.WriteCSV(f, records)
			}); err != nil {
				return err
			}

			importancePath := filepath.Join(outDir, "CustomerImportance.csv")
			importance := generator.GenerateImportance(records)
			if err := writeFile(importancePath, func(f *os.File) error {
				return generator.WriteImportanceCSV(f, importance)
			}); err != nil {
				return err
			}

			slog.Info("dataset generated",
				slog.String("transactions", transactionsPath),
				slog.Int("transaction_rows", len(records)),
				slog.String("importance", importancePath),
				slog.Int("importance_rows", len(importance)),
			)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10000, "number of transactions")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks a random one)")
	cmd.Flags().IntVar(&customers, "customers", 0, "distinct customers")
	cmd.Flags().IntVar(&merchants, "merchants", 0, "distinct merchants")
	cmd.Flags().StringVarP(&outDir, "out", "o", "data", "output directory")

	return cmd
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
