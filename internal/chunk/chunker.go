// Package chunk splits extracted DCE text into bounded-size segments for
// the reasoning provider, preserving section boundaries.
package chunk

import (
	"strings"

	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
)

// Chunker splits extracted text into chunks no larger than maxTokens
// token-equivalent units. A section that fits the budget becomes exactly
// one chunk; an oversized section is sub-split at the nearest sentence or
// whitespace boundary below the limit, never mid-token.
type Chunker struct {
	maxTokens int
}

// NewChunker creates a chunker with the given token budget per chunk.
func NewChunker(maxTokens int) *Chunker {
	if maxTokens <= 0 {
		maxTokens = 1
	}
	return &Chunker{maxTokens: maxTokens}
}

// Chunk returns the ordered chunks for the extracted text. Sequence indices
// are contiguous and 0-based. Fails with EmptyInput when there are no
// sections.
func (c *Chunker) Chunk(et *entity.ExtractedText) ([]entity.Chunk, error) {
	if et == nil || len(et.Sections) == 0 {
		return nil, common.ErrEmptyInput
	}

	var chunks []entity.Chunk
	for _, sec := range et.Sections {
		words := strings.Fields(sec.Text)
		if len(words) == 0 {
			continue
		}
		for _, part := range splitWords(words, c.maxTokens) {
			chunks = append(chunks, entity.Chunk{
				Index:   len(chunks),
				Section: sec.Label,
				Text:    strings.Join(part, " "),
			})
		}
	}
	if len(chunks) == 0 {
		return nil, common.ErrEmptyInput
	}
	return chunks, nil
}

// TokenCount approximates the token-equivalent size of text. Whitespace
// separated words are the unit the budget is expressed in.
func TokenCount(text string) int {
	return len(strings.Fields(text))
}

// splitWords partitions words into runs of at most max entries, preferring
// to break after sentence-ending words inside each window.
func splitWords(words []string, max int) [][]string {
	if len(words) <= max {
		return [][]string{words}
	}
	var parts [][]string
	for start := 0; start < len(words); {
		end := start + max
		if end >= len(words) {
			parts = append(parts, words[start:])
			break
		}
		cut := end
		// walk back to the latest sentence boundary within the window
		for i := end - 1; i > start; i-- {
			if endsSentence(words[i]) {
				cut = i + 1
				break
			}
		}
		parts = append(parts, words[start:cut])
		start = cut
	}
	return parts
}

func endsSentence(word string) bool {
	if word == "" {
		return false
	}
	switch word[len(word)-1] {
	case '.', '!', '?', ':', ';':
		return true
	}
	return false
}
