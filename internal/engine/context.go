package engine

import "github.com/finefaser/ordertrack/internal/record"

// Context is the per-document working state passed between extractors: the
// raw text, read-only for the run, and the partial mapping being
// incrementally filled. One extraction run owns its Context exclusively;
// nothing is shared across documents.
//
// Each extractor writes only keys it owns. Where two extractors could
// plausibly claim the same key (quantity appears in both the SKU table and
// the line-item row) the run order plus Record.SetOnce decide the winner.
type Context struct {
	Text   string
	Fields record.Record
}

func newContext(text string) *Context {
	return &Context{Text: text, Fields: record.Record{}}
}
