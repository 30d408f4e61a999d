// Package extract converts uploaded DCE documents into plain text with
// section boundaries preserved, so downstream findings stay attributable
// to a human-checkable location.
package extract

import (
	"fmt"
	"log/slog"

	"github.com/bidkiller/dce-analyzer/constants"
	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
)

// Extractor extracts sectioned plain text from document bytes.
type Extractor struct {
	maxSizeBytes int64
	logger       *slog.Logger
}

// NewExtractor returns an Extractor that rejects inputs larger than
// maxSizeBytes before any parsing happens.
func NewExtractor(maxSizeBytes int64, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{maxSizeBytes: maxSizeBytes, logger: logger}
}

// Extract parses content according to its declared format tag and returns
// the ordered sections. Section labels are pages for PDF and headings for
// structured text formats.
func (e *Extractor) Extract(content []byte, format string) (*entity.ExtractedText, error) {
	if e.maxSizeBytes > 0 && int64(len(content)) > e.maxSizeBytes {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", common.ErrDocumentTooLarge, len(content), e.maxSizeBytes)
	}

	var (
		sections []entity.Section
		err      error
	)
	switch format {
	case constants.PDF:
		sections, err = extractPDF(content)
	case constants.DOCX:
		sections, err = extractDOCX(content)
	case constants.TEXT:
		sections, err = extractPlain(content)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	sections = dropEmptySections(sections)
	if len(sections) == 0 {
		return nil, common.ErrEmptyContent
	}

	e.logger.Debug("extract.ok", "format", format, "sections", len(sections))
	return &entity.ExtractedText{Sections: sections}, nil
}

func dropEmptySections(in []entity.Section) []entity.Section {
	out := in[:0]
	for _, s := range in {
		if len(s.Text) > 0 {
			out = append(out, s)
		}
	}
	return out
}
