package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/bidkiller/dce-analyzer/constants"
	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
	"github.com/bidkiller/dce-analyzer/internal/repository"
)

// memAnalyses serves canned results for export tests.
type memAnalyses struct {
	mu      sync.Mutex
	results map[uuid.UUID]*entity.AnalysisResult
}

func (m *memAnalyses) Get(_ context.Context, resultID, _ uuid.UUID) (*entity.AnalysisResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if res, ok := m.results[resultID]; ok {
		return res, nil
	}
	return nil, common.ErrNotFound
}

func (m *memAnalyses) Create(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (*entity.AnalysisResult, error) {
	return nil, errors.New("not implemented")
}
func (m *memAnalyses) SetProgress(context.Context, uuid.UUID, int, string) error { return nil }
func (m *memAnalyses) Finalize(context.Context, *repository.FinalizeRequest) error {
	return nil
}
func (m *memAnalyses) List(context.Context, uuid.UUID, int, int) ([]*entity.AnalysisResult, error) {
	return nil, nil
}
func (m *memAnalyses) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (m *memAnalyses) FailStale(context.Context, time.Duration) (int, error) {
	return 0, nil
}

func seedResult(status constants.AnalysisStatus) (*memAnalyses, *entity.AnalysisResult) {
	budget := 350000.0
	now := time.Now()
	res := &entity.AnalysisResult{
		ID:         uuid.New(),
		AccountID:  uuid.New(),
		DocumentID: uuid.New(),
		Status:     status,
		Findings: []entity.Finding{
			{Lot: "Plomberie", Title: "EFS", Content: "Réseau eau froide sanitaire", Section: "Page 3", ChunkIndex: 2, Confidence: 0.85},
			{Lot: "Revetements", Title: "Peinture", Content: "Deux couches", Section: "Page 7", ChunkIndex: 5},
		},
		Summary: "Synthèse du dossier.",
		General: entity.GeneralInfo{
			ProjectName: "Gymnase municipal",
			ClientName:  "Ville de Test",
			BudgetHT:    &budget,
			Deadline:    "2026-10-01",
		},
		CreatedAt:   now,
		CompletedAt: &now,
	}
	return &memAnalyses{results: map[uuid.UUID]*entity.AnalysisResult{res.ID: res}}, res
}

func TestExportXLSX(t *testing.T) {
	analyses, res := seedResult(constants.AnalysisComplete)
	svc := NewService(analyses, nil)

	out, err := svc.ExportXLSX(context.Background(), res.ID, res.AccountID)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Analyse")
	if err != nil {
		t.Fatalf("read findings sheet: %v", err)
	}
	if len(rows) != 3 { // header + 2 findings
		t.Fatalf("findings sheet has %d rows, want 3", len(rows))
	}
	if rows[1][0] != "Plomberie" || rows[1][3] != "Page 3" {
		t.Errorf("first finding row = %v", rows[1])
	}

	project, err := f.GetRows("Projet")
	if err != nil {
		t.Fatalf("read project sheet: %v", err)
	}
	if len(project) == 0 || project[0][1] != "Gymnase municipal" {
		t.Errorf("project sheet = %v", project)
	}
}

func TestExportJSON(t *testing.T) {
	analyses, res := seedResult(constants.AnalysisPartial)
	res.Unanalyzed = []string{"Page 9"}
	svc := NewService(analyses, nil)

	out, err := svc.ExportJSON(context.Background(), res.ID, res.AccountID)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc["status"] != "PARTIAL" {
		t.Errorf("status = %v", doc["status"])
	}
	if _, ok := doc["unanalyzed_sections"]; !ok {
		t.Error("partial export must list unanalyzed sections")
	}
	if findings, ok := doc["findings"].([]any); !ok || len(findings) != 2 {
		t.Errorf("findings = %v", doc["findings"])
	}
}

func TestExport_NotExportable(t *testing.T) {
	for _, status := range []constants.AnalysisStatus{constants.AnalysisPending, constants.AnalysisFailed} {
		analyses, res := seedResult(status)
		svc := NewService(analyses, nil)
		if _, err := svc.ExportXLSX(context.Background(), res.ID, res.AccountID); !errors.Is(err, common.ErrNotExportable) {
			t.Errorf("%s: got %v, want ErrNotExportable", status, err)
		}
		if _, err := svc.ExportJSON(context.Background(), res.ID, res.AccountID); !errors.Is(err, common.ErrNotExportable) {
			t.Errorf("%s json: got %v, want ErrNotExportable", status, err)
		}
	}
}

func TestExport_NotFound(t *testing.T) {
	analyses, res := seedResult(constants.AnalysisComplete)
	svc := NewService(analyses, nil)
	if _, err := svc.ExportXLSX(context.Background(), uuid.New(), res.AccountID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
