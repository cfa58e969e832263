package engine

import (
	"regexp"
	"strings"

	"github.com/finefaser/ordertrack/internal/record"
)

var (
	lineItemStartMarkers = []string{"Description", "Product Details"}
	lineItemEndMarkers   = []string{
		"Tax is not payable",
		"TAX INVOICE",
		"Total",
		"Sold by",
		"E. & O.E",
	}

	// product text, 5-6 digit HSN, integer qty, currency-prefixed amount.
	reItemLine = regexp.MustCompile(`(?i)^(.*?)\s*\b(\d{5,6})\s+(\d+)\s+(?:Rs\.?|₹)\s*([0-9][0-9.,]*)`)
	// degraded shape: HSN directly followed by the amount, no qty column.
	reItemBare = regexp.MustCompile(`(?i)\b(\d{5,6})\s+(?:Rs\.?|₹)\s*([0-9][0-9.,]*)`)
)

// extractLineItem scans the description block for the first line shaped like
// a product row: free-text description, HSN code, quantity, gross amount.
// Quantity defers to a value already claimed by the SKU-table extractor.
// When no line matches the strict shape, a weaker two-part pattern recovers
// at least the HSN and gross amount, with quantity assumed 1.
func extractLineItem(c *Context) {
	block, ok := Locate(c.Text, lineItemStartMarkers, lineItemEndMarkers)
	if !ok {
		return
	}

	for _, raw := range strings.Split(block, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		m := reItemLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if product := strings.TrimSpace(m[1]); product != "" {
			c.Fields[record.FieldProduct] = product
		}
		c.Fields[record.FieldHSN] = m[2]
		c.Fields.SetOnce(record.FieldQty, m[3])
		c.Fields[record.FieldGrossAmount] = CleanAmount(m[4])
		return
	}

	if m := reItemBare.FindStringSubmatch(block); m != nil {
		c.Fields[record.FieldHSN] = m[1]
		c.Fields.SetOnce(record.FieldQty, "1")
		c.Fields[record.FieldGrossAmount] = CleanAmount(m[2])
	}
}

// CleanAmount strips currency labels and thousands separators from an amount
// token and trims whitespace. The cleaned string is kept as text: numeric
// interpretation is a downstream concern.
func CleanAmount(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"rs.", "rs", "₹"} {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
