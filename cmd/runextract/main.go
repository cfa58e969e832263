// runextract extracts a single label document and prints the normalized
// record as JSON without touching the record store. Debug tool.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/finefaser/ordertrack/internal/common"
	"github.com/finefaser/ordertrack/internal/engine"
	"github.com/finefaser/ordertrack/internal/record"
	"github.com/finefaser/ordertrack/internal/textsource"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <label-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	src := textsource.NewSource(textsource.Config{
		OpticalEnginePath: cfg.Extract.OpticalEnginePath,
		RendererPath:      cfg.Extract.RendererPath,
		DPI:               cfg.Extract.OCRDPI,
		MaxPages:          cfg.Extract.OCRMaxPages,
		MinTextBytes:      cfg.Extract.MinTextBytes,
		ForceFallback:     cfg.Extract.ForceFallback,
	}, logger)

	start := time.Now()
	res, err := src.Extract(ctx, path)
	if err != nil {
		logger.Error("text recovery failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("text recovery OK",
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"optical_fallback", res.UsedOpticalFallback,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if cfg.Extract.ShowRawText {
		fmt.Fprintln(os.Stderr, res.Text)
	}

	eng := engine.New(record.Current(), logger)
	rec := eng.Extract(res.Text)

	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}
