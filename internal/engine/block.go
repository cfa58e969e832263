package engine

import "strings"

// Locate finds the bounded substring of text between a start marker and the
// nearest end marker. Matching is case-insensitive.
//
// Start markers are tried in slice order: the first marker in the list that
// occurs anywhere in the text wins, even when a later-listed marker appears
// earlier in the text. The block runs from the end of the start marker to the
// nearest occurrence of any end marker at or after that position; with no end
// marker in range the block extends to the end of the text.
//
// The second return is false only when no start marker is present. Adjacent
// start and end markers yield an empty block, not a miss. Locate is pure:
// identical inputs always produce identical results.
func Locate(text string, startMarkers, endMarkers []string) (string, bool) {
	lower := lowerASCII(text)
	for _, m := range startMarkers {
		idx := strings.Index(lower, lowerASCII(m))
		if idx < 0 {
			continue
		}
		begin := idx + len(m)
		end := len(text)
		for _, e := range endMarkers {
			if j := strings.Index(lower[begin:], lowerASCII(e)); j >= 0 && begin+j < end {
				end = begin + j
			}
		}
		return text[begin:end], true
	}
	return "", false
}

// lowerASCII folds A-Z to a-z and leaves every other byte alone. Unlike
// strings.ToLower it never changes byte length (some Unicode case mappings
// do), so an index found in the folded string is always valid in the
// original. All markers are ASCII, which is all the folding they need.
func lowerASCII(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}
