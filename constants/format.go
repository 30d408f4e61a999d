package constants

import "strings"

// Formats holds the allowed document formats for the format field in Document.
var Formats = []string{"PDF", "DOCX", "TEXT"}

const (
	PDF  = "PDF"
	DOCX = "DOCX"
	TEXT = "TEXT"
)

// AllowedExtensions holds the default allowed file extensions for DCE uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"odt":  {},
	"txt":  {},
	"md":   {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to a canonical format tag.
// Returns "" for unrecognized extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx", "odt":
		return DOCX
	case "txt", "md":
		return TEXT
	default:
		return ""
	}
}
