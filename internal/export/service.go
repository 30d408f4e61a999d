// Package export renders finished analyses into downloadable artifacts.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
	"github.com/bidkiller/dce-analyzer/internal/repository"
)

// Service produces XLSX workbooks and JSON dumps for exportable analyses.
type Service struct {
	analyses repository.AnalysisRepository
	logger   *slog.Logger
}

func NewService(analyses repository.AnalysisRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{analyses: analyses, logger: logger}
}

// ExportXLSX returns a workbook for the analysis: a project sheet with the
// general metadata and a findings sheet, one row per finding. Only COMPLETE
// and PARTIAL results are exportable.
func (s *Service) ExportXLSX(ctx context.Context, resultID, accountID uuid.UUID) ([]byte, error) {
	start := time.Now()

	res, err := s.load(ctx, resultID, accountID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const projectSheet = "Projet"
	const findingsSheet = "Analyse"

	// the default sheet becomes the project sheet
	_ = f.SetSheetName(f.GetSheetName(0), projectSheet)
	if _, err := f.NewSheet(findingsSheet); err != nil {
		return nil, err
	}

	writeProjectSheet(f, projectSheet, res)
	writeFindingsSheet(f, findingsSheet, res)

	idx, _ := f.GetSheetIndex(projectSheet)
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"analysis_id", resultID.String(),
		"findings", len(res.Findings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportJSON returns the analysis as an indented JSON document.
func (s *Service) ExportJSON(ctx context.Context, resultID, accountID uuid.UUID) ([]byte, error) {
	res, err := s.load(ctx, resultID, accountID)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{
		"analysis_id": res.ID.String(),
		"status":      string(res.Status),
		"general":     res.General,
		"summary":     res.Summary,
		"findings":    res.Findings,
		"created_at":  res.CreatedAt.UTC().Format(time.RFC3339),
	}
	if res.CompletedAt != nil {
		doc["completed_at"] = res.CompletedAt.UTC().Format(time.RFC3339)
	}
	if len(res.Unanalyzed) > 0 {
		doc["unanalyzed_sections"] = res.Unanalyzed
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json write: %w", err)
	}
	s.logger.Info("export.json.ok", "analysis_id", resultID.String(), "bytes", len(out))
	return out, nil
}

func (s *Service) load(ctx context.Context, resultID, accountID uuid.UUID) (*entity.AnalysisResult, error) {
	res, err := s.analyses.Get(ctx, resultID, accountID)
	if err != nil {
		return nil, err
	}
	if !res.Status.Exportable() {
		return nil, fmt.Errorf("%w: analysis %s is %s", common.ErrNotExportable, resultID, res.Status)
	}
	return res, nil
}

func writeProjectSheet(f *excelize.File, sheet string, res *entity.AnalysisResult) {
	rows := [][2]string{
		{"Projet", res.General.ProjectName},
		{"Maître d'ouvrage", res.General.ClientName},
		{"Budget HT", ""},
		{"Date limite de remise", res.General.Deadline},
		{"Statut", string(res.Status)},
		{"Synthèse", res.Summary},
	}
	if res.General.BudgetHT != nil {
		rows[2][1] = fmt.Sprintf("%.2f", *res.General.BudgetHT)
	}

	for i, r := range rows {
		kCell, _ := excelize.CoordinatesToCellName(1, i+1)
		vCell, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(sheet, kCell, r[0])
		_ = f.SetCellValue(sheet, vCell, r[1])
	}
	if len(res.Unanalyzed) > 0 {
		kCell, _ := excelize.CoordinatesToCellName(1, len(rows)+1)
		vCell, _ := excelize.CoordinatesToCellName(2, len(rows)+1)
		_ = f.SetCellValue(sheet, kCell, "Sections non analysées")
		_ = f.SetCellValue(sheet, vCell, fmt.Sprintf("%v", res.Unanalyzed))
	}

	_ = f.SetColWidth(sheet, "A", "A", 26)
	_ = f.SetColWidth(sheet, "B", "B", 80)
}

func writeFindingsSheet(f *excelize.File, sheet string, res *entity.AnalysisResult) {
	headers := []string{"Lot", "Titre", "Contenu", "Section", "Confiance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, fd := range res.Findings {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, fd.Lot)
		write(2, fd.Title)
		write(3, fd.Content)
		write(4, fd.Section)
		if fd.Confidence > 0 {
			write(5, fmt.Sprintf("%.2f", fd.Confidence))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 36)
	_ = f.SetColWidth(sheet, "C", "C", 90)
	_ = f.SetColWidth(sheet, "D", "D", 18)
	_ = f.SetColWidth(sheet, "E", "E", 12)
}
