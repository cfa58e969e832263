package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/finefaser/ordertrack/internal/record"
)

// Reconcile migrates the orders table to the given schema version. It is
// additive-only and idempotent: the table is created when missing, and each
// recognized field (plus the added_at timestamp) that has no column yet gets
// a nullable TEXT column. Existing rows are untouched; their new columns
// read back as NULL and surface as the sentinel. Nothing is ever dropped or
// renamed. Call it once at startup, not per insert.
func Reconcile(ctx context.Context, db *sql.DB, dialect string, schema record.Schema, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := db.ExecContext(ctx, createOrdersSQL(dialect)); err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}

	cols, err := tableColumns(ctx, db)
	if err != nil {
		return err
	}
	have := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		have[c] = struct{}{}
	}

	wanted := append(schema.Fields(), AddedAtColumn)
	added := 0
	for _, f := range wanted {
		if _, ok := have[f]; ok {
			continue
		}
		q := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", ordersTable, f)
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("add column %s: %w", f, err)
		}
		logger.Info("store.reconcile.column_added", "column", f, "schema_version", schema.Version())
		added++
	}

	logger.Info("store.reconcile.ok",
		"schema_version", schema.Version(),
		"columns_added", added,
	)
	return nil
}

func createOrdersSQL(dialect string) string {
	idCol := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if dialect == DialectPostgres {
		idCol = "id BIGSERIAL PRIMARY KEY"
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", ordersTable, idCol)
}
