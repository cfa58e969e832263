package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finefaser/ordertrack/internal/record"
)

const sampleLabel = "Purchase Order No. 123456789012\n" +
	"Order Date 12/01/2024\n" +
	"Customer Address\n" +
	"Ravi Kumar\n" +
	"123 MG Road\n" +
	"560001\n" +
	"If undelivered call us\n" +
	"Description\n" +
	"Cotton T-Shirt 610910 2 Rs.499.00\n" +
	"Rs.499.00"

func TestExtractSampleLabel(t *testing.T) {
	eng := New(record.Current(), nil)
	rec := eng.Extract(sampleLabel)

	assert.Equal(t, "123456789012", rec[record.FieldPurchaseOrderNo])
	assert.Equal(t, "12/01/2024", rec[record.FieldOrderDate])
	assert.Equal(t, "Ravi Kumar", rec[record.FieldCustomer])
	assert.Contains(t, rec[record.FieldAddress], "123 MG Road 560001")
	assert.Equal(t, "Cotton T-Shirt", rec[record.FieldProduct])
	assert.Equal(t, "610910", rec[record.FieldHSN])
	assert.Equal(t, "2", rec[record.FieldQty])
	assert.Equal(t, "499.00", rec[record.FieldGrossAmount])
	assert.Equal(t, "499.00", rec[record.FieldTotalAmount])

	// fields the sample never mentions resolve to the sentinel
	assert.Equal(t, record.Sentinel, rec[record.FieldInvoiceNo])
	assert.Equal(t, record.Sentinel, rec[record.FieldInvoiceDate])
	assert.Equal(t, record.Sentinel, rec[record.FieldSKU])
	assert.Equal(t, record.Sentinel, rec[record.FieldCourier])
}

func TestExtractTotality(t *testing.T) {
	eng := New(record.Current(), nil)
	inputs := []string{
		"",
		"garbage \x00 bytes \xff here",
		"Customer Address",
		"Description",
		sampleLabel,
		"Rs Rs Rs",
		// runes whose lowercase form has a different byte length, before and
		// around block markers
		strings.Repeat("Ⱥ", 12) + "Description end",
		"İCustomer Address\nRaviȺ Kumar Do not collect cash\n560001",
		strings.Repeat("İȺ", 6) + sampleLabel,
	}

	for _, in := range inputs {
		rec := eng.Extract(in)
		require.Len(t, rec, len(record.Current().Fields()))
		for _, f := range record.Current().Fields() {
			v, ok := rec[f]
			assert.True(t, ok, "field %s missing", f)
			assert.NotEmpty(t, v, "field %s empty", f)
		}
	}
}

func TestExtractEmptyInputAllSentinel(t *testing.T) {
	eng := New(record.Current(), nil)
	rec := eng.Extract("")

	for _, f := range record.Current().Fields() {
		assert.Equal(t, record.Sentinel, rec[f], "field %s", f)
	}
}

func TestExtractIdempotent(t *testing.T) {
	eng := New(record.Current(), nil)

	a := eng.Extract(sampleLabel)
	b := eng.Extract(sampleLabel)
	assert.Equal(t, a, b)
}

func TestExtractSKUQuantityBeatsLineItem(t *testing.T) {
	text := "SKU Size Qty Color Order No.\n" +
		"TSHIRT-BLK M 3 Black 123456789012\n" +
		"Description\n" +
		"Cotton T-Shirt 610910 2 Rs.499.00\n"

	eng := New(record.Current(), nil)
	rec := eng.Extract(text)

	// the SKU table said 3, the line item said 2: the SKU value wins
	assert.Equal(t, "3", rec[record.FieldQty])
	assert.Equal(t, "TSHIRT-BLK", rec[record.FieldSKU])
	assert.Equal(t, "610910", rec[record.FieldHSN])
}

func TestExtractValidatesAgainstJSONSchema(t *testing.T) {
	eng := New(record.Current(), nil)
	rec := eng.Extract(sampleLabel)

	require.NoError(t, record.Current().Validate(rec))
}

func TestExtractFullLabelWithShippingMetadata(t *testing.T) {
	text := "Prepaid: Do not collect cash\n" +
		"Valmo Pickup\n" +
		"Customer Address\n" +
		"Asha Verma\n" +
		"45 Park Street\n" +
		"700016\n" +
		"If undelivered return to hub\n" +
		"SKU Size Qty Color Order No.\n" +
		"KURTI-RED Free Size 1 Red 205678901234\n" +
		"TAX INVOICE\n" +
		"Invoice No. FFX1234\n" +
		"Invoice Date 13.01.2024\n" +
		"Order Date 12.01.2024\n" +
		"Description\n" +
		"Rayon Kurti Set 620520 1 Rs.350.00\n" +
		"Other Charges Rs.0.00\n" +
		"Total Rs.350.00\n"

	eng := New(record.Current(), nil)
	rec := eng.Extract(text)

	assert.Equal(t, "Asha Verma", rec[record.FieldCustomer])
	assert.Equal(t, "KURTI-RED", rec[record.FieldSKU])
	assert.Equal(t, "Free Size", rec[record.FieldSize])
	assert.Equal(t, "1", rec[record.FieldQty])
	assert.Equal(t, "Red", rec[record.FieldColor])
	assert.Equal(t, "205678901234", rec[record.FieldPurchaseOrderNo])
	assert.Equal(t, "FFX1234", rec[record.FieldInvoiceNo])
	assert.Equal(t, "12.01.2024", rec[record.FieldOrderDate])
	assert.Equal(t, "13.01.2024", rec[record.FieldInvoiceDate])
	assert.Equal(t, "Rayon Kurti Set", rec[record.FieldProduct])
	assert.Equal(t, "620520", rec[record.FieldHSN])
	assert.Equal(t, "350.00", rec[record.FieldGrossAmount])
	assert.Equal(t, "350.00", rec[record.FieldTotalAmount])
	assert.Equal(t, "Prepaid", rec[record.FieldPaymentType])
	assert.Equal(t, "Valmo", rec[record.FieldCourier])
}
