package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	dcev1 "github.com/bidkiller/dce-analyzer/gen/proto/dce/v1"
	"github.com/bidkiller/dce-analyzer/internal/analysis"
	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/repository"
	"github.com/bidkiller/dce-analyzer/internal/utils"
)

type AnalysisServer struct {
	dcev1.UnimplementedAnalysisServiceServer
	pipeline *analysis.Pipeline
	analyses repository.AnalysisRepository
	accounts repository.AccountRepository
	logger   *slog.Logger
}

func NewAnalysisServer(pipeline *analysis.Pipeline, analyses repository.AnalysisRepository, accounts repository.AccountRepository, logger *slog.Logger) *AnalysisServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisServer{pipeline: pipeline, analyses: analyses, accounts: accounts, logger: logger}
}

// AnalyzeDocument accepts one DCE upload and returns the PENDING analysis.
func (s *AnalysisServer) AnalyzeDocument(ctx context.Context, req *dcev1.AnalyzeDocumentRequest) (*dcev1.AnalyzeDocumentResponse, error) {
	accountID, err := parseUUID(req.GetAccountId(), "account_id")
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is empty")
	}

	if ok, err := s.accounts.Exists(ctx, accountID); err != nil {
		s.logger.Error("account lookup failed", "account_id", accountID, "error", err)
		return nil, common.InternalError("internal error")
	} else if !ok {
		return nil, common.NotFoundError("account not found")
	}

	ctx = common.WithAccountID(ctx, accountID.String())
	res, err := s.pipeline.Analyze(ctx, accountID, filename, req.GetContent())
	if err != nil {
		return nil, toStatus(err)
	}
	return &dcev1.AnalyzeDocumentResponse{Analysis: utils.ToPBAnalysis(res)}, nil
}

func (s *AnalysisServer) GetAnalysis(ctx context.Context, req *dcev1.GetAnalysisRequest) (*dcev1.GetAnalysisResponse, error) {
	accountID, resultID, err := parseScope(req.GetAccountId(), req.GetAnalysisId())
	if err != nil {
		return nil, err
	}
	res, err := s.analyses.Get(ctx, resultID, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &dcev1.GetAnalysisResponse{Analysis: utils.ToPBAnalysis(res)}, nil
}

func (s *AnalysisServer) GetJobStatus(ctx context.Context, req *dcev1.GetJobStatusRequest) (*dcev1.GetJobStatusResponse, error) {
	accountID, resultID, err := parseScope(req.GetAccountId(), req.GetAnalysisId())
	if err != nil {
		return nil, err
	}
	res, err := s.analyses.Get(ctx, resultID, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	out := &dcev1.GetJobStatusResponse{
		Status:      string(res.Status),
		Progress:    int32(res.Progress),
		CurrentStep: res.CurrentStep,
	}
	if res.Error != nil {
		out.ErrorMessage = *res.Error
	}
	return out, nil
}

func (s *AnalysisServer) ListAnalyses(ctx context.Context, req *dcev1.ListAnalysesRequest) (*dcev1.ListAnalysesResponse, error) {
	accountID, err := parseUUID(req.GetAccountId(), "account_id")
	if err != nil {
		return nil, err
	}
	list, err := s.analyses.List(ctx, accountID, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*dcev1.Analysis, 0, len(list))
	for _, res := range list {
		out = append(out, utils.ToPBAnalysis(res))
	}
	return &dcev1.ListAnalysesResponse{Analyses: out}, nil
}

func (s *AnalysisServer) DeleteAnalysis(ctx context.Context, req *dcev1.DeleteAnalysisRequest) (*dcev1.DeleteAnalysisResponse, error) {
	accountID, resultID, err := parseScope(req.GetAccountId(), req.GetAnalysisId())
	if err != nil {
		return nil, err
	}
	if err := s.analyses.Delete(ctx, resultID, accountID); err != nil {
		return nil, toStatus(err)
	}
	return &dcev1.DeleteAnalysisResponse{}, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func parseScope(accountRaw, analysisRaw string) (accountID, resultID uuid.UUID, err error) {
	accountID, err = parseUUID(accountRaw, "account_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	resultID, err = parseUUID(analysisRaw, "analysis_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return accountID, resultID, nil
}
