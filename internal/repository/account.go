package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
	"github.com/bidkiller/dce-analyzer/internal/utils"

	"github.com/bidkiller/dce-analyzer/gen/ent"
	entaccount "github.com/bidkiller/dce-analyzer/gen/ent/account"
)

type AccountRepository interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	Exists(ctx context.Context, accountID uuid.UUID) (bool, error)
	// GetAllowance satisfies quota.AllowanceSource: the analyses-per-period
	// allowance synced from the billing provider, re-read on every check.
	GetAllowance(ctx context.Context, accountID uuid.UUID) (int, error)
}

type accountRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAccountRepository(client *ent.Client, logger *slog.Logger) AccountRepository {
	return &accountRepository{client: client, logger: logger}
}

func (r *accountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	row, err := r.client.Account.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: account %s", common.ErrNotFound, accountID)
		}
		r.logger.Error("failed to load account", "account_id", accountID, "error", err)
		return nil, err
	}
	return utils.ToAccount(row), nil
}

func (r *accountRepository) Exists(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return r.client.Account.Query().Where(entaccount.ID(accountID)).Exist(ctx)
}

func (r *accountRepository) GetAllowance(ctx context.Context, accountID uuid.UUID) (int, error) {
	row, err := r.client.Account.Query().
		Where(entaccount.ID(accountID)).
		Select(entaccount.FieldAnalysesAllowance).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("%w: account %s", common.ErrNotFound, accountID)
		}
		return 0, err
	}
	return row.AnalysesAllowance, nil
}
