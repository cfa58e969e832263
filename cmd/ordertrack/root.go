package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/finefaser/ordertrack/internal/common"
	"github.com/finefaser/ordertrack/internal/record"
	"github.com/finefaser/ordertrack/internal/repository"
)

var (
	rootLogger *slog.Logger
	cfg        *common.Config

	flagForceFallback bool
	flagShowRawText   bool
)

var rootCmd = &cobra.Command{
	Use:   "ordertrack",
	Short: "Extract and track order records from shipping-label documents",
	Long: `ordertrack pulls structured order records (customer, address, order
metadata, line items, amounts) out of shipping-label PDFs and keeps them in a
local record store with CSV/XLSX snapshot export.`,
	SilenceUsage: true,
}

func Execute(logger *slog.Logger) {
	rootLogger = logger
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVar(&flagForceFallback, "force-fallback", false,
		"bypass direct text extraction and always use the optical path")
	rootCmd.PersistentFlags().BoolVar(&flagShowRawText, "show-raw-text", false,
		"log the recovered raw text before extraction (debug only)")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		rootLogger.Debug("no .env file loaded", "error", err)
	}

	cfg = common.LoadConfig()
	if flagForceFallback {
		cfg.Extract.ForceFallback = true
	}
	if flagShowRawText {
		cfg.Extract.ShowRawText = true
	}
	if err := cfg.Validate(); err != nil {
		rootLogger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
}

// openStore opens the record store and reconciles it to the current schema.
func openStore(ctx context.Context) (*sql.DB, repository.OrderRepository, error) {
	db, err := repository.Open(ctx, repository.Config{
		DSN:         cfg.Database.DSN,
		DialTimeout: 3 * time.Second,
	}, rootLogger)
	if err != nil {
		return nil, nil, err
	}

	dialect := repository.DialectFor(cfg.Database.DSN)
	schema := record.Current()
	if err := repository.Reconcile(ctx, db, dialect, schema, rootLogger); err != nil {
		repository.Close(db, rootLogger)
		return nil, nil, err
	}

	return db, repository.NewOrderRepository(db, dialect, schema, rootLogger), nil
}
