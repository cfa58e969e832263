package constants

import "strings"

// FileTypes holds the allowed file types for the format field in an extraction run.
var FileTypes = []string{"PDF", "TXT"}

const (
	PDF  = "PDF"
	TEXT = "TXT"
)

// AllowedExtensions holds the default allowed file extensions for label ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a (possibly dotted) extension to a canonical format,
// or "" when the extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "txt":
		return TEXT
	default:
		return ""
	}
}
