package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/constants"
)

// Finding is one extracted structured insight attributed to a source section.
type Finding struct {
	Lot        string  `json:"lot"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Confidence float32 `json:"confidence,omitempty"`
	Section    string  `json:"section"`
	ChunkIndex int     `json:"chunk_index"`
}

// GeneralInfo carries project-level metadata extracted in the first pass.
type GeneralInfo struct {
	ProjectName string   `json:"project_name,omitempty"`
	ClientName  string   `json:"client_name,omitempty"`
	BudgetHT    *float64 `json:"budget_ht,omitempty"`
	Deadline    string   `json:"deadline,omitempty"` // YYYY-MM-DD
}

// AnalysisResult is the structured output of one pipeline run.
// Immutable once the status is terminal, except for deletion.
type AnalysisResult struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	DocumentID  uuid.UUID
	Status      constants.AnalysisStatus
	Findings    []Finding
	Summary     string
	General     GeneralInfo
	// Unanalyzed lists section labels whose chunks could not be analyzed;
	// non-empty only for PARTIAL results.
	Unanalyzed  []string
	Progress    int // 0..100 while PENDING
	CurrentStep string
	Error       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}
