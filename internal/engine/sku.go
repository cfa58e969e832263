package engine

import (
	"regexp"
	"strings"

	"github.com/finefaser/ordertrack/internal/record"
)

// Tolerant of spacing, case, and a missing trailing period on "No.".
var reSKUHeader = regexp.MustCompile(`(?i)SKU\s+Size\s+Qty\s+Color\s+Order\s*No\.?`)

// extractSKUTuple reads the whitespace-delimited tuple on the first
// non-empty line after a "SKU Size Qty Color Order No." table header.
//
// A size spelled across two tokens as "Free" "Size" is merged into the
// single value "Free Size", shifting quantity and color one position right.
// This extractor runs before the line-item extractor, so the quantity it
// claims wins under the first-writer rule.
func extractSKUTuple(c *Context) {
	loc := reSKUHeader.FindStringIndex(c.Text)
	if loc == nil {
		return
	}

	var tuple []string
	for _, raw := range strings.Split(c.Text[loc[1]:], "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			tuple = strings.Fields(line)
			break
		}
	}
	if len(tuple) == 0 {
		return
	}

	c.Fields[record.FieldSKU] = tuple[0]
	rest := tuple[1:]
	if len(rest) >= 2 && strings.EqualFold(rest[0], "Free") && strings.EqualFold(rest[1], "Size") {
		c.Fields[record.FieldSize] = "Free Size"
		rest = rest[2:]
	} else if len(rest) >= 1 {
		c.Fields[record.FieldSize] = rest[0]
		rest = rest[1:]
	}
	if len(rest) >= 1 {
		c.Fields.SetOnce(record.FieldQty, rest[0])
	}
	if len(rest) >= 2 {
		c.Fields[record.FieldColor] = rest[1]
	}
}
