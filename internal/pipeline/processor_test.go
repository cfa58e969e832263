package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finefaser/ordertrack/constants"
	"github.com/finefaser/ordertrack/internal/engine"
	"github.com/finefaser/ordertrack/internal/record"
	"github.com/finefaser/ordertrack/internal/repository"
	"github.com/finefaser/ordertrack/internal/textsource"
)

type fakeSource struct {
	text string
	err  error
}

func (f fakeSource) Extract(context.Context, string) (textsource.Result, error) {
	if f.err != nil {
		return textsource.Result{}, f.err
	}
	return textsource.Result{Text: f.text, Pages: 1, Method: "pdf-text"}, nil
}

func newOrders(t *testing.T, schema record.Schema) repository.OrderRepository {
	t.Helper()
	ctx := context.Background()

	dsn := "file:" + filepath.Join(t.TempDir(), "orders.db")
	db, err := repository.Open(ctx, repository.Config{DSN: dsn, DialTimeout: 3 * time.Second}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { repository.Close(db, nil) })

	dialect := repository.DialectFor(dsn)
	require.NoError(t, repository.Reconcile(ctx, db, dialect, schema, nil))
	return repository.NewOrderRepository(db, dialect, record.Current(), nil)
}

const labelText = "Purchase Order No. 123456789012\n" +
	"Customer Address\nRavi Kumar\n560001\nIf undelivered\n" +
	"Description\nCotton T-Shirt 610910 2 Rs.499.00\nRs.499.00"

func TestProcessFile(t *testing.T) {
	orders := newOrders(t, record.Current())
	proc := NewProcessor(nil, fakeSource{text: labelText}, engine.New(record.Current(), nil), orders)

	res, err := proc.ProcessFile(context.Background(), "label.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, "", res.RunID.String())
	assert.Equal(t, constants.RunStatusSaved, res.Status)
	assert.Positive(t, res.OrderID)
	assert.Equal(t, "Ravi Kumar", res.Record[record.FieldCustomer])

	rows, err := orders.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "123456789012", rows[0].Fields[record.FieldPurchaseOrderNo])
	assert.NotEmpty(t, rows[0].AddedAt)

	// added_at is appended by the pipeline in RFC 3339 UTC
	ts, err := time.Parse(time.RFC3339, rows[0].AddedAt)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestProcessFileEmptyTextStillPersists(t *testing.T) {
	orders := newOrders(t, record.Current())
	proc := NewProcessor(nil, fakeSource{text: ""}, engine.New(record.Current(), nil), orders)

	res, err := proc.ProcessFile(context.Background(), "blank.pdf")
	require.NoError(t, err)

	for _, f := range record.Current().Fields() {
		assert.Equal(t, record.Sentinel, res.Record[f])
	}
}

func TestProcessFileSourceFailure(t *testing.T) {
	orders := newOrders(t, record.Current())
	proc := NewProcessor(nil, fakeSource{err: fmt.Errorf("no such file")}, engine.New(record.Current(), nil), orders)

	res, err := proc.ProcessFile(context.Background(), "missing.pdf")
	require.Error(t, err)
	assert.Equal(t, constants.RunStatusFailed, res.Status)

	rows, err := orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestProcessFilePersistenceFailureKeepsRecord(t *testing.T) {
	// table stuck at v1 rejects v2 inserts; the extracted record must still
	// come back so the caller can retry after fixing the store
	orders := newOrders(t, record.V1())
	proc := NewProcessor(nil, fakeSource{text: labelText}, engine.New(record.Current(), nil), orders)

	res, err := proc.ProcessFile(context.Background(), "label.pdf")
	require.Error(t, err)
	assert.Equal(t, constants.RunStatusFailed, res.Status)
	assert.Equal(t, "Ravi Kumar", res.Record[record.FieldCustomer])
	assert.Zero(t, res.OrderID)
}
