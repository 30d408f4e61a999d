package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is a raw DCE upload. Immutable once stored.
type Document struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Filename   string
	Format     string
	SizeBytes  int64
	UploadedAt time.Time
}

// Section is one labeled slice of extracted text: a page for PDFs, a
// heading-delimited block for structured text. Ephemeral; lives only for
// the duration of a pipeline run.
type Section struct {
	Label string
	Text  string
}

// ExtractedText is the ordered output of the content extractor.
type ExtractedText struct {
	Sections []Section
}

// Chunk is a bounded-size text unit submitted as one reasoning call.
// Index ordering is significant: the merge step concatenates findings in
// chunk index order.
type Chunk struct {
	Index   int
	Section string
	Text    string
}
