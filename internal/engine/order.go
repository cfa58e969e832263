package engine

import (
	"regexp"

	"github.com/finefaser/ordertrack/internal/record"
)

var (
	rePOLabeled  = regexp.MustCompile(`(?i)Purchase Order No\.?\s*:?\s*(\d{12,24})\b`)
	reBareNumber = regexp.MustCompile(`\b\d+\b`)
	reInvoiceNo  = regexp.MustCompile(`(?i)Invoice No\.?\s*:?\s*(\S+)`)

	// D[./-]M[./-]YYYY or YYYY[./-]M[./-]D.
	datePattern   = `(\d{1,2}[./-]\d{1,2}[./-]\d{4}|\d{4}[./-]\d{1,2}[./-]\d{1,2})`
	reDate        = regexp.MustCompile(datePattern)
	reOrderDate   = regexp.MustCompile(`(?i)Order Date\s*:?\s*` + datePattern)
	reInvoiceDate = regexp.MustCompile(`(?i)Invoice Date\s*:?\s*` + datePattern)
)

// extractIdentifiers pulls the purchase-order and invoice numbers.
//
// The purchase-order number prefers an explicit label; without one, the
// first standalone 12-24 digit token anywhere in the document is accepted,
// skipping 6-digit tokens so a postal code is never mistaken for an order
// number. The invoice number is accepted only from an explicit label:
// unlabeled alphanumeric tokens are not reliably distinguishable from SKUs
// or AWB codes.
func extractIdentifiers(c *Context) {
	if m := rePOLabeled.FindStringSubmatch(c.Text); m != nil {
		c.Fields[record.FieldPurchaseOrderNo] = m[1]
	} else {
		for _, tok := range reBareNumber.FindAllString(c.Text, -1) {
			if len(tok) >= 12 && len(tok) <= 24 && len(tok) != 6 {
				c.Fields[record.FieldPurchaseOrderNo] = tok
				break
			}
		}
	}

	if m := reInvoiceNo.FindStringSubmatch(c.Text); m != nil {
		c.Fields[record.FieldInvoiceNo] = m[1]
	}
}

// extractDates resolves order and invoice dates independently. Explicit
// "Order Date" / "Invoice Date" labels win; with neither label present the
// first date-shaped token in the document is taken as the order date. One
// date is never copied into the other field.
func extractDates(c *Context) {
	orderLabeled := reOrderDate.FindStringSubmatch(c.Text)
	invoiceLabeled := reInvoiceDate.FindStringSubmatch(c.Text)

	if orderLabeled != nil {
		c.Fields[record.FieldOrderDate] = orderLabeled[1]
	}
	if invoiceLabeled != nil {
		c.Fields[record.FieldInvoiceDate] = invoiceLabeled[1]
	}
	if orderLabeled == nil && invoiceLabeled == nil {
		if m := reDate.FindString(c.Text); m != "" {
			c.Fields[record.FieldOrderDate] = m
		}
	}
}
