package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/bidkiller/dce-analyzer/internal/entity"
)

// extractPlain splits UTF-8 text into sections on markdown-style headings.
// Text before the first heading becomes a "Preamble" section. Invalid UTF-8
// sequences are replaced with the replacement character.
func extractPlain(content []byte) ([]entity.Section, error) {
	if !utf8.Valid(content) {
		content = []byte(strings.ToValidUTF8(string(content), "�"))
	}

	sb := newSectionBuilder("Preamble")
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			heading := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			if heading != "" {
				sb.startSection(heading)
				continue
			}
		}
		if trimmed != "" {
			sb.addText(trimmed)
		}
	}
	return sb.finish(), nil
}
