package engine

import (
	"regexp"

	"github.com/finefaser/ordertrack/internal/record"
)

var reCurrencyAmount = regexp.MustCompile(`(?i)(?:Rs\.?|₹)\s*([0-9][0-9.,]*)`)

// extractTotal takes the last currency-prefixed figure in the document as
// the grand total. On the observed label layouts the total is always the
// final printed amount; this is a layout assumption, not a guarantee, and
// has not been validated against multi-line-item or discount-bearing
// documents.
func extractTotal(c *Context) {
	matches := reCurrencyAmount.FindAllStringSubmatch(c.Text, -1)
	if len(matches) == 0 {
		return
	}
	c.Fields[record.FieldTotalAmount] = CleanAmount(matches[len(matches)-1][1])
}
