// Package engine turns the raw text of one shipping-label document into a
// complete, schema-conformant order record.
//
// The engine is a deterministic, rule-based, best-effort pipeline: a family
// of independent field extractors runs over the text in a fixed order, each
// filling only the keys it owns, and the schema normalizer converts every
// unresolved field to the "NA" sentinel. Extraction never fails and never
// performs I/O; malformed or empty input degrades to sentinel values.
package engine

import (
	"log/slog"

	"github.com/finefaser/ordertrack/internal/record"
)

type Engine struct {
	schema record.Schema
	logger *slog.Logger
}

func New(schema record.Schema, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{schema: schema, logger: logger}
}

// Extract runs every field extractor over text and returns a total record:
// exactly the schema's field names, each a recovered value or the sentinel.
//
// The extractor order is part of the contract, not an implementation detail:
// the SKU-table extractor runs before the line-item extractor so its
// quantity wins under the first-writer rule. Extract is idempotent; calling
// it twice with the same text yields the same record.
func (e *Engine) Extract(text string) record.Record {
	c := newContext(text)

	extractSKUTuple(c)
	extractLineItem(c)
	extractCustomer(c)
	extractIdentifiers(c)
	extractDates(c)
	extractShipping(c)
	extractTotal(c)

	rec := e.schema.Normalize(c.Fields)

	// The chosen total matching the single line-item gross is the usual
	// single-item case, but on a multi-item document it means the last-figure
	// heuristic picked a row amount instead of the grand total.
	if rec.IsSet(record.FieldGrossAmount) && rec[record.FieldGrossAmount] == rec[record.FieldTotalAmount] {
		e.logger.Debug("extract.total.equals_gross",
			"gross_amount", rec[record.FieldGrossAmount],
			"total_amount", rec[record.FieldTotalAmount],
		)
	}
	return rec
}

// Schema returns the record schema this engine normalizes against.
func (e *Engine) Schema() record.Schema { return e.schema }
