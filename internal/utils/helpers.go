package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bidkiller/dce-analyzer/constants"
	"github.com/bidkiller/dce-analyzer/gen/ent"
	"github.com/bidkiller/dce-analyzer/internal/entity"
)

func ToAccount(e *ent.Account) *entity.Account {
	return &entity.Account{
		ID:                 e.ID,
		Email:              e.Email,
		CompanyName:        e.CompanyName,
		SubscriptionTier:   e.SubscriptionTier,
		SubscriptionStatus: e.SubscriptionStatus,
		AnalysesAllowance:  e.AnalysesAllowance,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:         e.ID,
		AccountID:  e.AccountID,
		Filename:   e.Filename,
		Format:     e.Format,
		SizeBytes:  e.SizeBytes,
		UploadedAt: e.UploadedAt,
	}
}

func ToAnalysisResult(e *ent.AnalysisResult) (*entity.AnalysisResult, error) {
	var findings []entity.Finding
	if len(e.Findings) > 0 {
		if err := json.Unmarshal(e.Findings, &findings); err != nil {
			return nil, fmt.Errorf("decode findings for analysis %s: %w", e.ID, err)
		}
	}
	general := entity.GeneralInfo{
		ProjectName: strOrEmpty(e.ProjectName),
		ClientName:  strOrEmpty(e.ClientName),
		BudgetHT:    e.BudgetHt,
	}
	if e.Deadline != nil {
		general.Deadline = e.Deadline.Format("2006-01-02")
	}
	return &entity.AnalysisResult{
		ID:          e.ID,
		AccountID:   e.AccountID,
		DocumentID:  e.DocumentID,
		Status:      constants.AnalysisStatus(e.Status),
		Findings:    findings,
		Summary:     e.Summary,
		General:     general,
		Unanalyzed:  e.Unanalyzed,
		Progress:    e.Progress,
		CurrentStep: e.CurrentStep,
		Error:       e.ErrorMessage,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		CompletedAt: e.CompletedAt,
	}, nil
}

func ToReservation(e *ent.QuotaReservation) *entity.QuotaReservation {
	return &entity.QuotaReservation{
		ID:          e.ID,
		AccountID:   e.AccountID,
		Units:       e.Units,
		State:       constants.ReservationState(e.State),
		PeriodStart: e.PeriodStart,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ParseYMD parses a calendar date as midnight UTC to match DATE semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
