package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
)

// docxDocumentXMLPath is the path to the main document body inside a .docx zip.
const docxDocumentXMLPath = "word/document.xml"

// odtContentXMLPath is the path to the document body inside an .odt zip.
const odtContentXMLPath = "content.xml"

// wpTag matches one paragraph block including its attributes.
var wpTag = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)

// wtTag matches <w:t>text</w:t> or <w:t xml:space="preserve">text</w:t>.
var wtTag = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// headingStyle matches paragraph style references like Heading1 or Titre2
// (French Word templates, common in DCE documents).
var headingStyle = regexp.MustCompile(`<w:pStyle[^>]+w:val="(?:Heading|Titre)\d*"`)

// odtHeading matches <text:h ...>text</text:h> blocks in ODT content.
var odtHeading = regexp.MustCompile(`<text:h[^>]*>(.*?)</text:h>`)

// odtParagraph matches <text:p ...>text</text:p> blocks in ODT content.
var odtParagraph = regexp.MustCompile(`(?s)<text:[hp][^>]*>(.*?)</text:[hp]>`)

// xmlTag strips any remaining markup from matched inner text.
var xmlTag = regexp.MustCompile(`<[^>]+>`)

// extractDOCX extracts sectioned text from .docx (OOXML) or .odt
// (OpenDocument) bytes. Both are ZIP containers; we scan the body XML with
// regular expressions rather than a full XML parse so real-world documents
// with attribute-laden paragraphs (e.g. <w:p w:rsidR="...">) still yield
// their text nodes. Heading-styled paragraphs open a new section.
func extractDOCX(content []byte) ([]entity.Section, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a zip: %v", common.ErrCorruptDocument, err)
	}

	if body := readZipEntry(zr, docxDocumentXMLPath); body != nil {
		return sectionsFromOOXML(body), nil
	}
	if body := readZipEntry(zr, odtContentXMLPath); body != nil {
		return sectionsFromODT(body), nil
	}
	return nil, fmt.Errorf("%w: no document body found in archive", common.ErrCorruptDocument)
}

func readZipEntry(zr *zip.Reader, name string) []byte {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return nil
		}
		_ = rc.Close()
		return buf.Bytes()
	}
	return nil
}

func sectionsFromOOXML(body []byte) []entity.Section {
	sb := newSectionBuilder("Document")
	for _, para := range wpTag.FindAllString(string(body), -1) {
		text := joinMatches(wtTag.FindAllStringSubmatch(para, -1))
		if text == "" {
			continue
		}
		if headingStyle.MatchString(para) {
			sb.startSection(text)
			continue
		}
		sb.addText(text)
	}
	return sb.finish()
}

func sectionsFromODT(body []byte) []entity.Section {
	sb := newSectionBuilder("Document")
	for _, m := range odtParagraph.FindAllStringSubmatch(string(body), -1) {
		text := strings.TrimSpace(xmlTag.ReplaceAllString(m[1], " "))
		if text == "" {
			continue
		}
		if odtHeading.MatchString(m[0]) {
			sb.startSection(text)
			continue
		}
		sb.addText(text)
	}
	return sb.finish()
}

func joinMatches(parts [][]string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.TrimSpace(p[1]))
	}
	return strings.TrimSpace(b.String())
}

// sectionBuilder accumulates paragraphs into labeled sections.
type sectionBuilder struct {
	defaultLabel string
	label        string
	body         strings.Builder
	sections     []entity.Section
}

func newSectionBuilder(defaultLabel string) *sectionBuilder {
	return &sectionBuilder{defaultLabel: defaultLabel, label: defaultLabel}
}

func (b *sectionBuilder) startSection(label string) {
	b.flush()
	b.label = label
}

func (b *sectionBuilder) addText(text string) {
	if b.body.Len() > 0 {
		b.body.WriteByte('\n')
	}
	b.body.WriteString(text)
}

func (b *sectionBuilder) flush() {
	if b.body.Len() == 0 && b.label == b.defaultLabel {
		return
	}
	text := strings.TrimSpace(b.body.String())
	if text == "" && b.label != b.defaultLabel {
		// heading with no body: keep the heading itself as content so the
		// section remains addressable
		text = b.label
	}
	if text != "" {
		b.sections = append(b.sections, entity.Section{Label: b.label, Text: text})
	}
	b.body.Reset()
}

func (b *sectionBuilder) finish() []entity.Section {
	b.flush()
	return b.sections
}
