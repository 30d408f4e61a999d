package server

import (
	"context"
	"fmt"
	"log/slog"

	dcev1 "github.com/bidkiller/dce-analyzer/gen/proto/dce/v1"
	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/export"
)

type ExportServer struct {
	dcev1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportAnalysis(ctx context.Context, req *dcev1.ExportAnalysisRequest) (*dcev1.ExportAnalysisResponse, error) {
	accountID, resultID, err := parseScope(req.GetAccountId(), req.GetAnalysisId())
	if err != nil {
		return nil, err
	}

	switch req.GetFormat() {
	case dcev1.ExportFormat_EXPORT_FORMAT_JSON:
		content, err := s.svc.ExportJSON(ctx, resultID, accountID)
		if err != nil {
			return nil, toStatus(err)
		}
		return &dcev1.ExportAnalysisResponse{
			Content:     content,
			Filename:    fmt.Sprintf("analyse-%s.json", resultID),
			ContentType: "application/json",
		}, nil
	case dcev1.ExportFormat_EXPORT_FORMAT_XLSX, dcev1.ExportFormat_EXPORT_FORMAT_UNSPECIFIED:
		content, err := s.svc.ExportXLSX(ctx, resultID, accountID)
		if err != nil {
			return nil, toStatus(err)
		}
		return &dcev1.ExportAnalysisResponse{
			Content:     content,
			Filename:    fmt.Sprintf("analyse-%s.xlsx", resultID),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil
	default:
		return nil, common.InvalidArgumentError("unsupported export format")
	}
}
