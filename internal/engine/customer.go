package engine

import (
	"regexp"
	"strings"

	"github.com/finefaser/ordertrack/constants"
	"github.com/finefaser/ordertrack/internal/record"
)

// Marker sets for the customer/address block. Start markers are in priority
// order; Meesho-style labels print "Customer Address", Flipkart-style ones
// "Bill To / Ship To".
var (
	customerStartMarkers = []string{
		"Customer Address",
		"Bill To / Ship To",
		"Bill To",
		"Ship To",
	}
	customerEndMarkers = []string{
		"If undelivered",
		"Sold by",
		"GSTIN",
		"Purchase Order No",
		"Description",
		"Product Details",
		"Invoice No",
		"Invoice Date",
		"Pickup",
	}
)

// Phrases that ride along inside otherwise useful address lines.
var addressNoisePhrases = []string{
	"Do not collect cash",
	"Destination Code",
	"Return Code",
}

var (
	rePincode   = regexp.MustCompile(`\b\d{6}\b`)
	reGluedName = regexp.MustCompile(`^([A-Za-z][A-Za-z .]*?)\s*\d`)
	reSpaces    = regexp.MustCompile(`\s+`)
)

// extractCustomer recovers a human name and mailing address from the noisy
// block of lines following a customer-address marker. Both fields stay unset
// (and so normalize to the sentinel) when no block is found or nothing
// survives filtering; this extractor never fails the run.
func extractCustomer(c *Context) {
	block, ok := Locate(c.Text, customerStartMarkers, customerEndMarkers)
	if !ok {
		return
	}

	lines := retainAddressLines(block)
	if len(lines) == 0 {
		return
	}

	pinIdx := -1
	for i, l := range lines {
		if rePincode.MatchString(l) {
			pinIdx = i
			break
		}
	}

	name := inferName(lines, pinIdx)

	var addrLines []string
	if pinIdx >= 0 {
		addrLines = lines[:pinIdx+1]
	} else if len(lines) > 1 {
		addrLines = lines[1:]
	}
	address := reSpaces.ReplaceAllString(strings.TrimSpace(strings.Join(addrLines, " ")), " ")
	if name != "" && strings.HasPrefix(address, name) {
		address = strings.TrimSpace(strings.TrimPrefix(address, name))
		address = strings.TrimLeft(address, ", ")
	}

	if name != "" {
		c.Fields[record.FieldCustomer] = name
	}
	if address != "" {
		c.Fields[record.FieldAddress] = address
	}
}

// retainAddressLines splits the block into trimmed non-empty lines, drops
// pure service/courier noise lines, and strips noise phrases from the rest.
func retainAddressLines(block string) []string {
	var out []string
	for _, raw := range strings.Split(block, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isServiceNoise(line) {
			continue
		}
		for _, phrase := range addressNoisePhrases {
			line = stripFold(line, phrase)
		}
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// isServiceNoise reports whether the line is courier/payment boilerplate
// rather than address content.
func isServiceNoise(line string) bool {
	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "cod") ||
		strings.HasPrefix(lower, "prepaid") ||
		strings.HasPrefix(lower, "pickup") {
		return true
	}
	for _, courier := range constants.Couriers {
		if strings.HasPrefix(lower, strings.ToLower(courier)) {
			return true
		}
	}
	return false
}

// stripFold removes every case-insensitive occurrence of phrase from s.
func stripFold(s, phrase string) string {
	lowerPhrase := lowerASCII(phrase)
	for {
		idx := strings.Index(lowerASCII(s), lowerPhrase)
		if idx < 0 {
			return s
		}
		s = s[:idx] + s[idx+len(phrase):]
	}
}

// inferName picks the customer name from the retained lines, scanning up to
// and including the postal-code line (all lines when no pincode was found):
//  1. first line whose leading alphabetic run is glued to a digit (name
//     jammed against a house number) -> the alphabetic run;
//  2. otherwise the first line of at most 8 words that contains a letter;
//  3. otherwise the text before the first comma of the first line.
func inferName(lines []string, pinIdx int) string {
	limit := len(lines)
	if pinIdx >= 0 {
		limit = pinIdx + 1
	}
	for _, l := range lines[:limit] {
		if m := reGluedName.FindStringSubmatch(l); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}
	for _, l := range lines[:limit] {
		if len(strings.Fields(l)) <= 8 && strings.ContainsFunc(l, isLetter) {
			return l
		}
	}
	first := lines[0]
	if i := strings.Index(first, ","); i >= 0 {
		first = first[:i]
	}
	return strings.TrimSpace(first)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
