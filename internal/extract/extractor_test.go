package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/bidkiller/dce-analyzer/constants"
	"github.com/bidkiller/dce-analyzer/internal/common"
)

func TestExtract_PlainTextSections(t *testing.T) {
	e := NewExtractor(0, nil)
	content := []byte(`Avant-propos du dossier.

# Lot 1 - Gros oeuvre
Fondations en béton armé.
Murs porteurs.

# Lot 8 - Peinture
Deux couches sur toutes surfaces.
`)

	et, err := e.Extract(content, constants.TEXT)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(et.Sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(et.Sections))
	}
	if et.Sections[0].Label != "Preamble" {
		t.Errorf("first section label = %q, want Preamble", et.Sections[0].Label)
	}
	if et.Sections[1].Label != "Lot 1 - Gros oeuvre" {
		t.Errorf("second section label = %q", et.Sections[1].Label)
	}
	if et.Sections[2].Label != "Lot 8 - Peinture" {
		t.Errorf("third section label = %q", et.Sections[2].Label)
	}
}

func TestExtract_PlainTextNoHeadings(t *testing.T) {
	e := NewExtractor(0, nil)
	et, err := e.Extract([]byte("juste du texte sans titres"), constants.TEXT)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(et.Sections) != 1 || et.Sections[0].Label != "Preamble" {
		t.Fatalf("sections = %+v, want single Preamble", et.Sections)
	}
}

func TestExtract_EmptyContent(t *testing.T) {
	e := NewExtractor(0, nil)
	if _, err := e.Extract([]byte("   \n  \n"), constants.TEXT); !errors.Is(err, common.ErrEmptyContent) {
		t.Errorf("got %v, want ErrEmptyContent", err)
	}
}

func TestExtract_SizeGate(t *testing.T) {
	e := NewExtractor(16, nil)
	if _, err := e.Extract(make([]byte, 17), constants.TEXT); !errors.Is(err, common.ErrDocumentTooLarge) {
		t.Errorf("got %v, want ErrDocumentTooLarge", err)
	}
	// at the limit is fine
	if _, err := e.Extract([]byte("sixteen bytes ok"), constants.TEXT); err != nil {
		t.Errorf("at-limit input rejected: %v", err)
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	e := NewExtractor(0, nil)
	if _, err := e.Extract([]byte("x"), "RTF"); !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtract_DOCX(t *testing.T) {
	documentXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p w:rsidR="00A1"><w:pPr><w:pStyle w:val="Titre1"/></w:pPr><w:r><w:t>Lot 2 - Charpente</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Charpente bois </w:t></w:r><w:r><w:t>traditionnelle.</w:t></w:r></w:p>
    <w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t>Couverture</w:t></w:r></w:p>
    <w:p><w:r><w:t>Tuiles terre cuite.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	e := NewExtractor(0, nil)
	et, err := e.Extract(buildZip(t, "word/document.xml", documentXML), constants.DOCX)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(et.Sections) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(et.Sections), et.Sections)
	}
	if et.Sections[0].Label != "Lot 2 - Charpente" {
		t.Errorf("first label = %q", et.Sections[0].Label)
	}
	if !bytes.Contains([]byte(et.Sections[0].Text), []byte("Charpente bois traditionnelle.")) {
		t.Errorf("run text not joined: %q", et.Sections[0].Text)
	}
	if et.Sections[1].Label != "Couverture" {
		t.Errorf("second label = %q", et.Sections[1].Label)
	}
}

func TestExtract_ODT(t *testing.T) {
	contentXML := `<?xml version="1.0"?>
<office:document-content xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">
  <office:body><office:text>
    <text:h text:outline-level="1">Lot 5 - Menuiseries</text:h>
    <text:p>Fenêtres aluminium <text:span>double vitrage</text:span>.</text:p>
  </office:text></office:body>
</office:document-content>`

	e := NewExtractor(0, nil)
	et, err := e.Extract(buildZip(t, "content.xml", contentXML), constants.DOCX)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(et.Sections) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(et.Sections), et.Sections)
	}
	if et.Sections[0].Label != "Lot 5 - Menuiseries" {
		t.Errorf("label = %q", et.Sections[0].Label)
	}
}

func TestExtract_CorruptDOCX(t *testing.T) {
	e := NewExtractor(0, nil)
	if _, err := e.Extract([]byte("not a zip at all"), constants.DOCX); !errors.Is(err, common.ErrCorruptDocument) {
		t.Errorf("got %v, want ErrCorruptDocument", err)
	}
	// a zip without any known document body
	if _, err := e.Extract(buildZip(t, "mimetype", "application/unknown"), constants.DOCX); !errors.Is(err, common.ErrCorruptDocument) {
		t.Errorf("got %v, want ErrCorruptDocument", err)
	}
}

func buildZip(t *testing.T, name, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}
