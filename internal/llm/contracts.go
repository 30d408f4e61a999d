package llm

import "context"

// Finding is the normalized shape we want from the model for one insight.
type Finding struct {
	Lot        string  `json:"lot"`                  // must match the lot taxonomy if provided
	Title      string  `json:"title"`                // short label for the insight
	Content    string  `json:"content"`              // the extracted technical content
	Confidence float32 `json:"confidence,omitempty"` // optional (0..1)
}

// ChunkResponse is the full JSON document expected back from one chunk call.
type ChunkResponse struct {
	Findings []Finding `json:"findings"`
	Summary  string    `json:"summary,omitempty"`
}

// GeneralInfo carries project-level metadata from the first-pass call.
type GeneralInfo struct {
	ProjectName string   `json:"project_name,omitempty"`
	ClientName  string   `json:"client_name,omitempty"`
	BudgetHT    *float64 `json:"budget_ht,omitempty"`
	Deadline    string   `json:"deadline,omitempty"` // YYYY-MM-DD
}

// ChunkRequest is one structured-extraction call unit.
type ChunkRequest struct {
	DocumentName string
	Section      string
	ChunkIndex   int
	Text         string
	AllowedLots  []string
}

// Analyzer is the interface the pipeline depends on.
type Analyzer interface {
	// AnalyzeChunk extracts structured findings from one chunk. The raw
	// validated JSON is returned alongside for audit storage.
	AnalyzeChunk(ctx context.Context, req ChunkRequest) (ChunkResponse, []byte /*rawJSON*/, error)
	// ExtractGeneralInfo runs the project-metadata pass over the opening
	// portion of the document.
	ExtractGeneralInfo(ctx context.Context, documentName, text string) (GeneralInfo, error)
}
