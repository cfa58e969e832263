package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finefaser/ordertrack/internal/record"
)

func runTotal(text string) record.Record {
	c := newContext(text)
	extractTotal(c)
	return c.Fields
}

func TestTotalTakesLastCurrencyFigure(t *testing.T) {
	fields := runTotal("item Rs.499.00 shipping Rs.40.00 grand total Rs.539.00")
	assert.Equal(t, "539.00", fields[record.FieldTotalAmount])
}

func TestTotalSingleFigure(t *testing.T) {
	fields := runTotal("Rs. 1,299.00")
	assert.Equal(t, "1299.00", fields[record.FieldTotalAmount])
}

func TestTotalCaseInsensitivePrefix(t *testing.T) {
	fields := runTotal("total rs 250.50")
	assert.Equal(t, "250.50", fields[record.FieldTotalAmount])
}

func TestTotalAbsent(t *testing.T) {
	fields := runTotal("no currency figures, just 499.00 bare")
	assert.False(t, fields.IsSet(record.FieldTotalAmount))
}
