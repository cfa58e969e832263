package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finefaser/ordertrack/internal/export"
	"github.com/finefaser/ordertrack/internal/record"
	"github.com/finefaser/ordertrack/internal/repository"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a snapshot of all saved orders (newest first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		db, orders, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer repository.Close(db, rootLogger)

		svc := export.NewService(orders, record.Current(), rootLogger)

		var b []byte
		switch exportFormat {
		case "csv":
			b, err = svc.SnapshotCSV(ctx)
		case "xlsx":
			b, err = svc.SnapshotXLSX(ctx)
		default:
			return fmt.Errorf("unknown format %q (want csv or xlsx)", exportFormat)
		}
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = cfg.Export.SnapshotFile
			if exportFormat == "xlsx" {
				out = "orders_snapshot.xlsx"
			}
		}
		if err := os.WriteFile(out, b, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", out, len(b))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "snapshot format: csv or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (defaults to SNAPSHOT_FILE)")
}
