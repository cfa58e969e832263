package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finefaser/ordertrack/internal/engine"
	"github.com/finefaser/ordertrack/internal/export"
	"github.com/finefaser/ordertrack/internal/pipeline"
	"github.com/finefaser/ordertrack/internal/record"
	"github.com/finefaser/ordertrack/internal/repository"
	"github.com/finefaser/ordertrack/internal/textsource"
)

var processCmd = &cobra.Command{
	Use:   "process <label-file> [label-file...]",
	Short: "Extract order records from label documents and save them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		db, orders, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer repository.Close(db, rootLogger)

		src := textsource.NewSource(textsource.Config{
			OpticalEnginePath: cfg.Extract.OpticalEnginePath,
			RendererPath:      cfg.Extract.RendererPath,
			DPI:               cfg.Extract.OCRDPI,
			MaxPages:          cfg.Extract.OCRMaxPages,
			MinTextBytes:      cfg.Extract.MinTextBytes,
			ForceFallback:     cfg.Extract.ForceFallback,
		}, rootLogger)

		eng := engine.New(record.Current(), rootLogger)
		proc := pipeline.NewProcessor(rootLogger, src, eng, orders)
		proc.ShowRawText = cfg.Extract.ShowRawText

		for _, path := range args {
			res, err := proc.ProcessFile(ctx, path)
			if err != nil {
				return fmt.Errorf("process %s: %w", path, err)
			}

			b, _ := json.MarshalIndent(res.Record, "", "  ")
			fmt.Printf("saved order %d from %s:\n%s\n", res.OrderID, path, b)
		}

		// refresh the on-disk snapshot after a successful batch
		svc := export.NewService(orders, record.Current(), rootLogger)
		if err := svc.WriteCSV(ctx, cfg.Export.SnapshotFile); err != nil {
			return fmt.Errorf("refresh snapshot: %w", err)
		}
		return nil
	},
}
