package chunk

import (
	"errors"
	"strings"
	"testing"

	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
)

func TestChunker_SectionFitsBudget(t *testing.T) {
	c := NewChunker(100)
	et := &entity.ExtractedText{Sections: []entity.Section{
		{Label: "Page 1", Text: "alpha beta gamma"},
		{Label: "Page 2", Text: "delta epsilon"},
	}}

	chunks, err := c.Chunk(et)
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	for i, ch := range chunks {
		if ch.Index != i {
			t.Errorf("chunk %d has index %d", i, ch.Index)
		}
	}
	if chunks[0].Section != "Page 1" || chunks[1].Section != "Page 2" {
		t.Errorf("section labels lost: %q, %q", chunks[0].Section, chunks[1].Section)
	}
}

func TestChunker_OversizedSectionSplits(t *testing.T) {
	c := NewChunker(10)
	words := make([]string, 25)
	for i := range words {
		words[i] = "word"
	}
	et := &entity.ExtractedText{Sections: []entity.Section{
		{Label: "CCTP", Text: strings.Join(words, " ")},
	}}

	chunks, err := c.Chunk(et)
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	total := 0
	for i, ch := range chunks {
		n := TokenCount(ch.Text)
		if n > 10 {
			t.Errorf("chunk %d has %d tokens, budget is 10", i, n)
		}
		if ch.Section != "CCTP" {
			t.Errorf("chunk %d lost section label: %q", i, ch.Section)
		}
		if ch.Index != i {
			t.Errorf("chunk %d has index %d", i, ch.Index)
		}
		total += n
	}
	if total != 25 {
		t.Errorf("chunks carry %d tokens, want 25", total)
	}
}

func TestChunker_PrefersSentenceBoundary(t *testing.T) {
	c := NewChunker(6)
	et := &entity.ExtractedText{Sections: []entity.Section{
		{Label: "Doc", Text: "one two three four. five six seven eight nine ten"},
	}}

	chunks, err := c.Chunk(et)
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
	if !strings.HasSuffix(chunks[0].Text, "four.") {
		t.Errorf("first chunk should break after the sentence, got %q", chunks[0].Text)
	}
}

func TestChunker_EmptyInput(t *testing.T) {
	c := NewChunker(10)
	for name, et := range map[string]*entity.ExtractedText{
		"nil":             nil,
		"no sections":     {},
		"whitespace only": {Sections: []entity.Section{{Label: "P", Text: "   \n\t "}}},
	} {
		if _, err := c.Chunk(et); !errors.Is(err, common.ErrEmptyInput) {
			t.Errorf("%s: got %v, want ErrEmptyInput", name, err)
		}
	}
}

func TestTokenCount(t *testing.T) {
	if n := TokenCount("  lot n°2 :  gros œuvre  "); n != 5 {
		t.Errorf("TokenCount = %d, want 5", n)
	}
	if n := TokenCount(""); n != 0 {
		t.Errorf("TokenCount(empty) = %d, want 0", n)
	}
}
