package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialects supported by the record store.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

type Config struct {
	DSN         string
	DialTimeout time.Duration
}

// DialectFor picks the SQL dialect from the DSN: postgres URLs go through
// pgx, everything else is treated as a SQLite path or URI.
func DialectFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// Open opens the record store for the configured DSN and verifies the
// connection. The returned handle has an explicit lifecycle: open it once at
// process start and pass it to whoever persists records; there is no hidden
// package-level connection.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dialect := DialectFor(cfg.DSN)
	logger.Info("connecting to record store", "dialect", dialect)

	driver := "sqlite"
	if dialect == DialectPostgres {
		driver = "pgx"
	}
	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open record store", "error", err)
		return nil, err
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to reach record store", "error", err)
		_ = db.Close()
		return nil, err
	}

	logger.Info("record store connected")
	return db, nil
}

// Close closes the store handle gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close record store", "error", err)
		return
	}
	logger.Info("record store closed")
}

// HealthCheck pings the store to catch DSN issues early.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("pinging record store")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}
