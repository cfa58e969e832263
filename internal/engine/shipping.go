package engine

import (
	"regexp"

	"github.com/finefaser/ordertrack/constants"
	"github.com/finefaser/ordertrack/internal/record"
)

var (
	paymentPatterns = compileWordPatterns(constants.PaymentTypesAsStrings())
	courierPatterns = compileWordPatterns(constants.Couriers)
)

func compileWordPatterns(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}

// extractShipping classifies the payment type and courier by whole-word,
// case-insensitive keyword matches over the whole document. This is pure
// keyword classification, not positional parsing: the first label found per
// category wins and absence leaves the field for the normalizer.
func extractShipping(c *Context) {
	payments := constants.PaymentTypesAsStrings()
	for i, re := range paymentPatterns {
		if re.MatchString(c.Text) {
			c.Fields[record.FieldPaymentType] = payments[i]
			break
		}
	}
	for i, re := range courierPatterns {
		if re.MatchString(c.Text) {
			c.Fields[record.FieldCourier] = constants.Couriers[i]
			break
		}
	}
}
