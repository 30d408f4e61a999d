package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/constants"
	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
	"github.com/bidkiller/dce-analyzer/internal/utils"

	"github.com/bidkiller/dce-analyzer/gen/ent"
	entanalysis "github.com/bidkiller/dce-analyzer/gen/ent/analysisresult"
)

// FinalizeRequest is the single atomic write that makes a result terminal.
// The quota reservation referenced by the row is settled in the same
// transaction: committed for COMPLETE/PARTIAL, released for FAILED.
type FinalizeRequest struct {
	ResultID     uuid.UUID
	Status       constants.AnalysisStatus
	Findings     []entity.Finding
	Summary      string
	General      entity.GeneralInfo
	Unanalyzed   []string
	ErrorMessage *string
}

type AnalysisRepository interface {
	Create(ctx context.Context, accountID, documentID, reservationID uuid.UUID) (*entity.AnalysisResult, error)
	SetProgress(ctx context.Context, resultID uuid.UUID, progress int, step string) error
	Finalize(ctx context.Context, req *FinalizeRequest) error
	Get(ctx context.Context, resultID, accountID uuid.UUID) (*entity.AnalysisResult, error)
	List(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.AnalysisResult, error)
	Delete(ctx context.Context, resultID, accountID uuid.UUID) error
	// FailStale marks PENDING results untouched for longer than olderThan as
	// FAILED and releases their reservations. Returns how many were failed.
	FailStale(ctx context.Context, olderThan time.Duration) (int, error)
}

type analysisRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAnalysisRepository(client *ent.Client, logger *slog.Logger) AnalysisRepository {
	return &analysisRepository{client: client, logger: logger}
}

func (r *analysisRepository) Create(ctx context.Context, accountID, documentID, reservationID uuid.UUID) (*entity.AnalysisResult, error) {
	row, err := r.client.AnalysisResult.Create().
		SetAccountID(accountID).
		SetDocumentID(documentID).
		SetReservationID(reservationID).
		SetStatus(string(constants.AnalysisPending)).
		SetCurrentStep("queued").
		Save(ctx)
	if err != nil {
		r.logger.Error("analysis create failed", "account_id", accountID, "document_id", documentID, "error", err)
		return nil, err
	}
	r.logger.Info("analysis created", "analysis_id", row.ID, "account_id", accountID, "document_id", documentID)
	return utils.ToAnalysisResult(row)
}

func (r *analysisRepository) SetProgress(ctx context.Context, resultID uuid.UUID, progress int, step string) error {
	_, err := r.client.AnalysisResult.Update().
		Where(
			entanalysis.ID(resultID),
			entanalysis.StatusEQ(string(constants.AnalysisPending)),
		).
		SetProgress(progress).
		SetCurrentStep(step).
		Save(ctx)
	return err
}

func (r *analysisRepository) Finalize(ctx context.Context, req *FinalizeRequest) error {
	if !req.Status.Terminal() {
		return fmt.Errorf("%w: finalize to non-terminal status %s", common.ErrInvalidInput, req.Status)
	}

	findingsJSON, err := json.Marshal(req.Findings)
	if err != nil {
		return fmt.Errorf("marshal findings: %w", err)
	}

	return WithTx(ctx, r.client, func(tx *ent.Tx) error {
		row, err := tx.AnalysisResult.Get(ctx, req.ResultID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: analysis %s", common.ErrNotFound, req.ResultID)
			}
			return err
		}

		upd := tx.AnalysisResult.Update().
			Where(
				entanalysis.ID(req.ResultID),
				entanalysis.StatusEQ(string(constants.AnalysisPending)),
			).
			SetStatus(string(req.Status)).
			SetFindings(findingsJSON).
			SetSummary(req.Summary).
			SetProgress(100).
			SetCurrentStep("done").
			SetCompletedAt(time.Now().UTC())
		if req.General.ProjectName != "" {
			upd = upd.SetProjectName(req.General.ProjectName)
		}
		if req.General.ClientName != "" {
			upd = upd.SetClientName(req.General.ClientName)
		}
		if req.General.BudgetHT != nil {
			upd = upd.SetBudgetHt(*req.General.BudgetHT)
		}
		if req.General.Deadline != "" {
			if d, perr := time.ParseInLocation("2006-01-02", req.General.Deadline, time.UTC); perr == nil {
				upd = upd.SetDeadline(d)
			}
		}
		if len(req.Unanalyzed) > 0 {
			upd = upd.SetUnanalyzed(req.Unanalyzed)
		}
		if req.ErrorMessage != nil {
			upd = upd.SetErrorMessage(*req.ErrorMessage)
		}

		n, err := upd.Save(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: analysis %s already finalized", common.ErrInvalidInput, req.ResultID)
		}

		// settle the quota reservation in the same transaction: either both
		// writes land or neither does
		if row.ReservationID != nil {
			if err := settleReservation(ctx, tx, *row.ReservationID, req.Status.Exportable()); err != nil {
				return fmt.Errorf("settle quota: %w", err)
			}
		}
		return nil
	})
}

func (r *analysisRepository) Get(ctx context.Context, resultID, accountID uuid.UUID) (*entity.AnalysisResult, error) {
	row, err := r.client.AnalysisResult.Query().
		Where(entanalysis.ID(resultID), entanalysis.AccountID(accountID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: analysis %s", common.ErrNotFound, resultID)
		}
		return nil, err
	}
	return utils.ToAnalysisResult(row)
}

func (r *analysisRepository) List(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.AnalysisResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.client.AnalysisResult.Query().
		Where(entanalysis.AccountID(accountID)).
		Order(ent.Desc(entanalysis.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list analyses", "account_id", accountID, "error", err)
		return nil, err
	}
	out := make([]*entity.AnalysisResult, 0, len(rows))
	for _, row := range rows {
		res, cerr := utils.ToAnalysisResult(row)
		if cerr != nil {
			return nil, cerr
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *analysisRepository) Delete(ctx context.Context, resultID, accountID uuid.UUID) error {
	n, err := r.client.AnalysisResult.Delete().
		Where(entanalysis.ID(resultID), entanalysis.AccountID(accountID)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: analysis %s", common.ErrNotFound, resultID)
	}
	r.logger.Info("analysis deleted", "analysis_id", resultID, "account_id", accountID)
	return nil
}

func (r *analysisRepository) FailStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	stale, err := r.client.AnalysisResult.Query().
		Where(
			entanalysis.StatusEQ(string(constants.AnalysisPending)),
			entanalysis.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, err
	}

	failed := 0
	msg := "analysis timed out"
	for _, row := range stale {
		err := r.Finalize(ctx, &FinalizeRequest{
			ResultID:     row.ID,
			Status:       constants.AnalysisFailed,
			ErrorMessage: &msg,
		})
		if err != nil {
			r.logger.Error("failed to expire stale analysis", "analysis_id", row.ID, "error", err)
			continue
		}
		r.logger.Warn("stale analysis failed by janitor", "analysis_id", row.ID, "created_at", row.CreatedAt)
		failed++
	}
	return failed, nil
}
