package textsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// pdfToOCR renders each page to PNG with the configured renderer, then OCRs
// the pages with the optical engine. Per-page OCR failures are collected as
// warnings rather than failing the document.
func (s *Source) pdfToOCR(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "ot-pages-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			s.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := s.runner.Run(ctx, s.cfg.RendererPath, "-r", fmt.Sprintf("%d", s.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, fmt.Errorf("render pages: %w", err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if s.cfg.MaxPages > 0 && len(matches) > s.cfg.MaxPages {
		matches = matches[:s.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"renderer produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := s.opticalOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	return b.String(), len(matches), warns, nil
}

func (s *Source) opticalOCR(ctx context.Context, imgPath string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := s.runner.Run(ctx, s.cfg.OpticalEnginePath, imgPath, "stdout", "-l", s.cfg.OCRLang)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("optical engine: %w", err)
	}
	return string(out), nil, nil
}
