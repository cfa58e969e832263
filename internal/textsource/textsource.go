// Package textsource recovers the raw text of a shipping-label document.
//
// PDF labels are read in-process first; when that yields too little text
// (image-only labels are common) the source falls back to the optical path:
// pages rendered with an external renderer, then OCR'd. The extraction
// engine itself never does I/O, so everything here runs strictly before an
// extraction run.
package textsource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/finefaser/ordertrack/constants"
)

type Config struct {
	OpticalEnginePath string // OCR binary name or absolute path; if empty -> "tesseract"
	RendererPath      string // page renderer binary; if empty -> "pdftoppm"

	OCRLang  string // default "eng"
	DPI      int    // rasterization DPI for image-only labels, default 300
	MaxPages int    // 0 = no limit

	// MinTextBytes is the direct-extraction yield below which the optical
	// fallback kicks in. Default 32.
	MinTextBytes int

	// ForceFallback bypasses direct text extraction entirely.
	ForceFallback bool
}

type Result struct {
	Text                string
	Pages               int
	SourceType          string // constants.PDF | constants.TEXT
	Method              string // "pdf-text" | "pdf-ocr" | "text-file"
	UsedOpticalFallback bool
	Duration            time.Duration
	Warnings            []string
}

type Source struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewSource(cfg Config, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.OpticalEnginePath == "" {
		cfg.OpticalEnginePath = "tesseract"
	}
	if cfg.RendererPath == "" {
		cfg.RendererPath = "pdftoppm"
	}
	if cfg.OCRLang == "" {
		cfg.OCRLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinTextBytes <= 0 {
		cfg.MinTextBytes = 32
	}
	return &Source{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension and the fallback policy.
func (s *Source) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	s.logger.Debug("textsource.start", "path", path, "ext", ext, "force_fallback", s.cfg.ForceFallback)

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := s.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.TEXT:
		b, err := os.ReadFile(path)
		if err != nil {
			return Result{SourceType: constants.TEXT}, fmt.Errorf("read text file: %w", err)
		}
		return Result{
			Text:       string(b),
			Pages:      1,
			SourceType: constants.TEXT,
			Method:     "text-file",
			Duration:   time.Since(start),
		}, nil
	default:
		s.logger.Error("unsupported extension", "extension", ext)
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

func (s *Source) extractPDF(ctx context.Context, path string) (Result, error) {
	res := Result{SourceType: constants.PDF}

	if !s.cfg.ForceFallback {
		text, pages, err := pdfText(path)
		if err != nil {
			res.Warnings = append(res.Warnings, err.Error())
		} else if len(text) >= s.cfg.MinTextBytes {
			res.Text = text
			res.Pages = pages
			res.Method = "pdf-text"
			return res, nil
		} else {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("direct extraction yielded %d bytes, below %d", len(text), s.cfg.MinTextBytes))
		}
		s.logger.Info("textsource.fallback", "path", path, "warnings", len(res.Warnings))
	}

	text, pages, warns, err := s.pdfToOCR(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		return res, err
	}
	res.Text = text
	res.Pages = pages
	res.Method = "pdf-ocr"
	res.UsedOpticalFallback = true
	return res, nil
}
