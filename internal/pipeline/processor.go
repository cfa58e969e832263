// Package pipeline coordinates one document's journey: text recovery, field
// extraction, validation, persistence. All I/O lives here and in the
// collaborators; the extraction engine itself stays pure.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finefaser/ordertrack/constants"
	"github.com/finefaser/ordertrack/internal/common"
	"github.com/finefaser/ordertrack/internal/engine"
	"github.com/finefaser/ordertrack/internal/record"
	"github.com/finefaser/ordertrack/internal/repository"
	"github.com/finefaser/ordertrack/internal/textsource"
)

// TextSource supplies the raw text of one document.
type TextSource interface {
	Extract(ctx context.Context, path string) (textsource.Result, error)
}

type Processor struct {
	Logger *slog.Logger
	Source TextSource
	Engine *engine.Engine
	Orders repository.OrderRepository

	// ShowRawText logs the recovered text before extraction. Debug
	// passthrough only; it never changes the extraction result.
	ShowRawText bool
}

func NewProcessor(logger *slog.Logger, src TextSource, eng *engine.Engine, orders repository.OrderRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Source: src, Engine: eng, Orders: orders}
}

// RunResult reports one completed (or partially completed) run.
type RunResult struct {
	RunID   uuid.UUID
	Status  constants.RunStatus
	Text    textsource.Result
	Record  record.Record
	OrderID int64
}

// ProcessFile recovers text for one label document, extracts a normalized
// record, and appends it to the store.
//
// Per-field extraction failures never surface here: they are absorbed into
// sentinel values by the engine. Only infrastructure failures (text
// recovery, persistence) return an error — and on a persistence failure the
// extracted record is still returned alongside it, so the caller can retry
// or correct without re-extracting.
func (p *Processor) ProcessFile(ctx context.Context, path string) (RunResult, error) {
	runID := uuid.New()
	ctx = common.WithRunID(ctx, runID.String())
	out := RunResult{RunID: runID, Status: constants.RunStatusRunning}

	res, err := p.Source.Extract(ctx, path)
	if err != nil {
		out.Status = constants.RunStatusFailed
		p.Logger.Error("processor.text.failed", "run_id", runID, "path", path, "err", err)
		return out, fmt.Errorf("recover text: %w", err)
	}
	out.Text = res
	out.Status = constants.RunStatusTextOK
	p.Logger.Info("processor.text.ok",
		"run_id", runID,
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"optical_fallback", res.UsedOpticalFallback,
	)
	if p.ShowRawText {
		p.Logger.Debug("processor.text.raw", "run_id", runID, "text", res.Text)
	}

	rec := p.Engine.Extract(res.Text)
	out.Record = rec
	if err := p.Engine.Schema().Validate(rec); err != nil {
		// the engine's totality contract makes this unreachable for any
		// input; treat a violation as a programming error worth failing on
		out.Status = constants.RunStatusFailed
		p.Logger.Error("processor.extract.invalid", "run_id", runID, "err", err)
		return out, fmt.Errorf("validate record: %w", err)
	}
	out.Status = constants.RunStatusExtractOK
	p.Logger.Info("processor.extract.ok", "run_id", runID, "resolved", countResolved(rec))

	addedAt := time.Now().UTC().Format(time.RFC3339)
	id, err := p.Orders.Insert(ctx, rec, addedAt)
	if err != nil {
		// recoverable: the record stays valid and is returned for retry
		out.Status = constants.RunStatusFailed
		p.Logger.Error("processor.save.failed", "run_id", runID, "err", err)
		return out, fmt.Errorf("persist record: %w", err)
	}
	out.OrderID = id
	out.Status = constants.RunStatusSaved
	p.Logger.Info("processor.save.ok", "run_id", runID, "order_id", id)
	return out, nil
}

func countResolved(rec record.Record) int {
	n := 0
	for f := range rec {
		if rec.IsSet(f) {
			n++
		}
	}
	return n
}
