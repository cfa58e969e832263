package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/finefaser/ordertrack/internal/record"
	"github.com/finefaser/ordertrack/internal/repository"
)

// Service renders the persisted record set as a flat tabular snapshot,
// ordered by insertion identity, newest first.
type Service struct {
	orders repository.OrderRepository
	schema record.Schema
	logger *slog.Logger
}

func NewService(orders repository.OrderRepository, schema record.Schema, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{orders: orders, schema: schema, logger: logger}
}

// header returns the snapshot column order: id, schema fields, added_at.
func (s *Service) header() []string {
	return append(append([]string{"id"}, s.schema.Fields()...), repository.AddedAtColumn)
}

func (s *Service) rows(ctx context.Context) ([][]string, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	out := make([][]string, 0, len(orders))
	for _, o := range orders {
		row := make([]string, 0, len(s.schema.Fields())+2)
		row = append(row, strconv.FormatInt(o.ID, 10))
		for _, f := range s.schema.Fields() {
			v, ok := o.Fields[f]
			if !ok {
				v = record.Sentinel
			}
			row = append(row, v)
		}
		row = append(row, o.AddedAt)
		out = append(out, row)
	}
	return out, nil
}

// SnapshotCSV returns the full record set as CSV bytes.
func (s *Service) SnapshotCSV(ctx context.Context) ([]byte, error) {
	start := time.Now()
	rows, err := s.rows(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(s.header()); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// SnapshotXLSX returns the full record set as an XLSX workbook (as bytes).
func (s *Service) SnapshotXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()
	rows, err := s.rows(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Orders"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range s.header() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// widen the free-text columns
	_ = f.SetColWidth(sheet, "F", "G", 40) // customer, address
	_ = f.SetColWidth(sheet, "H", "H", 28) // product

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// WriteCSV refreshes the snapshot file on disk after a successful run.
func (s *Service) WriteCSV(ctx context.Context, path string) error {
	b, err := s.SnapshotCSV(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
