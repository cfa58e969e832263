package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finefaser/ordertrack/internal/common"
	"github.com/finefaser/ordertrack/internal/record"
)

const ordersTable = "orders"

// AddedAtColumn holds the persistence timestamp appended by the caller; it
// is a store column, not an extraction field.
const AddedAtColumn = "added_at"

// StoredOrder is one persisted record with its insertion identity.
type StoredOrder struct {
	ID      int64
	Fields  record.Record
	AddedAt string
}

type OrderRepository interface {
	// Insert appends a normalized record and returns its auto-increment id.
	// A rejected insert is a recoverable error: the record itself stays
	// valid and the caller decides whether to retry.
	Insert(ctx context.Context, rec record.Record, addedAt string) (int64, error)

	// List returns every stored order, newest insertion first.
	List(ctx context.Context) ([]StoredOrder, error)

	// Columns returns the current column set of the orders table.
	Columns(ctx context.Context) ([]string, error)
}

type orderRepository struct {
	db      *sql.DB
	dialect string
	schema  record.Schema
	logger  *slog.Logger
}

func NewOrderRepository(db *sql.DB, dialect string, schema record.Schema, logger *slog.Logger) OrderRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &orderRepository{db: db, dialect: dialect, schema: schema, logger: logger}
}

func (r *orderRepository) Insert(ctx context.Context, rec record.Record, addedAt string) (int64, error) {
	fields := r.schema.Fields()
	cols := append(append([]string{}, fields...), AddedAtColumn)
	args := make([]any, 0, len(cols))
	for _, f := range fields {
		args = append(args, rec[f])
	}
	args = append(args, addedAt)

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		ordersTable, strings.Join(cols, ", "), placeholders(r.dialect, len(cols)))

	if r.dialect == DialectPostgres {
		var id int64
		err := r.db.QueryRowContext(ctx, q+" RETURNING id", args...).Scan(&id)
		if err != nil {
			r.logger.Error("order insert failed", "error", err)
			return 0, common.NewAppError("STORE_INSERT", "insert order", err)
		}
		return id, nil
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		r.logger.Error("order insert failed", "error", err)
		return 0, common.NewAppError("STORE_INSERT", "insert order", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, common.NewAppError("STORE_INSERT", "resolve insert id", err)
	}
	return id, nil
}

func (r *orderRepository) List(ctx context.Context) ([]StoredOrder, error) {
	cols, err := r.Columns(ctx)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY id DESC", strings.Join(cols, ", "), ordersTable)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		r.logger.Error("order list failed", "error", err)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []StoredOrder
	for rows.Next() {
		o := StoredOrder{Fields: record.Record{}}
		vals := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i, c := range cols {
			if c == "id" {
				dest[i] = &o.ID
			} else {
				dest[i] = &vals[i]
			}
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}

		for i, c := range cols {
			switch c {
			case "id":
			case AddedAtColumn:
				o.AddedAt = vals[i].String
			default:
				// rows persisted before a schema field existed read back as
				// NULL; surface them as the sentinel, never a guessed value
				if vals[i].Valid {
					o.Fields[c] = vals[i].String
				} else {
					o.Fields[c] = record.Sentinel
				}
			}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *orderRepository) Columns(ctx context.Context) ([]string, error) {
	return tableColumns(ctx, r.db)
}

func placeholders(dialect string, n int) string {
	ps := make([]string, n)
	for i := range ps {
		if dialect == DialectPostgres {
			ps[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ps[i] = "?"
		}
	}
	return strings.Join(ps, ", ")
}

// tableColumns introspects the orders table via a zero-row select, which
// works identically on both drivers.
func tableColumns(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", ordersTable))
	if err != nil {
		return nil, fmt.Errorf("inspect columns: %w", err)
	}
	defer func() { _ = rows.Close() }()
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	return cols, rows.Err()
}
