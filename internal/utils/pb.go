package utils

import (
	"fmt"
	"time"

	dcev1 "github.com/bidkiller/dce-analyzer/gen/proto/dce/v1"
	"github.com/bidkiller/dce-analyzer/internal/entity"
)

func ToPBAnalysis(a *entity.AnalysisResult) *dcev1.Analysis {
	out := &dcev1.Analysis{
		Id:                 a.ID.String(),
		AccountId:          a.AccountID.String(),
		DocumentId:         a.DocumentID.String(),
		Status:             string(a.Status),
		Summary:            a.Summary,
		General:            toPBGeneralInfo(a.General),
		UnanalyzedSections: a.Unanalyzed,
		Progress:           int32(a.Progress),
		CurrentStep:        a.CurrentStep,
		ErrorMessage:       strOrEmpty(a.Error),
		CreatedAt:          a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.CompletedAt != nil {
		out.CompletedAt = a.CompletedAt.UTC().Format(time.RFC3339)
	}
	for _, f := range a.Findings {
		out.Findings = append(out.Findings, &dcev1.Finding{
			Lot:        f.Lot,
			Title:      f.Title,
			Content:    f.Content,
			Confidence: f.Confidence,
			Section:    f.Section,
			ChunkIndex: int32(f.ChunkIndex),
		})
	}
	return out
}

func toPBGeneralInfo(g entity.GeneralInfo) *dcev1.GeneralInfo {
	out := &dcev1.GeneralInfo{
		ProjectName: g.ProjectName,
		ClientName:  g.ClientName,
		Deadline:    g.Deadline,
	}
	if g.BudgetHT != nil {
		out.BudgetHt = fmt.Sprintf("%.2f", *g.BudgetHT)
	}
	return out
}
