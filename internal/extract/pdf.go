package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
)

// extractPDF returns one section per page, labeled "Page N", preserving
// reading order.
func extractPDF(content []byte) ([]entity.Section, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: open pdf: %v", common.ErrCorruptDocument, err)
	}

	numPages := r.NumPage()
	sections := make([]entity.Section, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page degrades to a missing section, not a
			// failed document; the rest of the DCE is still analyzable.
			continue
		}
		sections = append(sections, entity.Section{
			Label: fmt.Sprintf("Page %d", i),
			Text:  strings.TrimSpace(text),
		})
	}
	return sections, nil
}
