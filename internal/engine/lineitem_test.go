package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finefaser/ordertrack/internal/record"
)

func runLineItem(text string) record.Record {
	c := newContext(text)
	extractLineItem(c)
	return c.Fields
}

func TestLineItemFourPartPattern(t *testing.T) {
	fields := runLineItem("Description\nCotton T-Shirt 610910 2 Rs.499.00\nTotal Rs.499.00")

	assert.Equal(t, "Cotton T-Shirt", fields[record.FieldProduct])
	assert.Equal(t, "610910", fields[record.FieldHSN])
	assert.Equal(t, "2", fields[record.FieldQty])
	assert.Equal(t, "499.00", fields[record.FieldGrossAmount])
}

func TestLineItemFirstMatchWins(t *testing.T) {
	text := "Description\n" +
		"Kurti Set 620520 1 Rs.350.00\n" +
		"Dupatta 621410 3 Rs.150.00\n"
	fields := runLineItem(text)

	assert.Equal(t, "Kurti Set", fields[record.FieldProduct])
	assert.Equal(t, "620520", fields[record.FieldHSN])
}

func TestLineItemCurrencyVariants(t *testing.T) {
	fields := runLineItem("Description\nSaree 540752 1 rs 1,299.00\n")

	assert.Equal(t, "1299.00", fields[record.FieldGrossAmount])
}

func TestLineItemThousandsSeparatorStripped(t *testing.T) {
	fields := runLineItem("Description\nLehenga 621710 1 Rs. 12,499.50\n")

	assert.Equal(t, "12499.50", fields[record.FieldGrossAmount])
}

func TestLineItemKeepsSKUQuantity(t *testing.T) {
	c := newContext("Description\nCotton T-Shirt 610910 2 Rs.499.00\n")
	c.Fields[record.FieldQty] = "3" // claimed by the SKU-table extractor
	extractLineItem(c)

	assert.Equal(t, "3", c.Fields[record.FieldQty])
}

func TestLineItemOverwritesSentinelQuantity(t *testing.T) {
	c := newContext("Description\nCotton T-Shirt 610910 2 Rs.499.00\n")
	c.Fields[record.FieldQty] = record.Sentinel
	extractLineItem(c)

	assert.Equal(t, "2", c.Fields[record.FieldQty])
}

func TestLineItemDegradedTwoPartFallback(t *testing.T) {
	// no quantity column: recover HSN and amount, assume one unit
	fields := runLineItem("Description\nHSN 610910 Rs.499.00\n")

	assert.Equal(t, "610910", fields[record.FieldHSN])
	assert.Equal(t, "1", fields[record.FieldQty])
	assert.Equal(t, "499.00", fields[record.FieldGrossAmount])
	assert.False(t, fields.IsSet(record.FieldProduct))
}

func TestLineItemNoBlock(t *testing.T) {
	fields := runLineItem("nothing relevant 610910 2 Rs.499.00")

	assert.False(t, fields.IsSet(record.FieldHSN))
	assert.False(t, fields.IsSet(record.FieldGrossAmount))
}

func TestLineItemBlockEndsAtBoilerplate(t *testing.T) {
	text := "Description\nplain text row\nTax is not payable\nShirt 610910 2 Rs.499.00"
	fields := runLineItem(text)

	assert.False(t, fields.IsSet(record.FieldHSN))
}

func TestCleanAmount(t *testing.T) {
	assert.Equal(t, "499.00", CleanAmount("Rs.499.00"))
	assert.Equal(t, "499.00", CleanAmount("rs 499.00"))
	assert.Equal(t, "1299.00", CleanAmount(" Rs. 1,299.00 "))
	assert.Equal(t, "499", CleanAmount("₹499"))
	assert.Equal(t, "499.00", CleanAmount("499.00"))
}
