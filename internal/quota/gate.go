// Package quota enforces per-account analysis allowances. A reservation is
// taken before any AI call and settled (committed or released) once the
// pipeline reaches a terminal outcome.
package quota

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/internal/common"
)

// Store is the persistence boundary for usage counters and reservations.
// Reserve must be a single atomic conditional increment: two concurrent
// reservations for the same account must never jointly exceed the
// allowance. Commit and Release are idempotent.
type Store interface {
	Reserve(ctx context.Context, accountID uuid.UUID, periodStart time.Time, allowance, units int) (uuid.UUID, error)
	Commit(ctx context.Context, reservationID uuid.UUID) error
	Release(ctx context.Context, reservationID uuid.UUID) error
}

// AllowanceSource exposes the subscription collaborator's per-period
// allowance. Refreshed on every reservation check; the gate never caches it.
type AllowanceSource interface {
	GetAllowance(ctx context.Context, accountID uuid.UUID) (int, error)
}

// Gate checks and reserves usage units against an account's tier allowance.
type Gate struct {
	store      Store
	allowances AllowanceSource
	logger     *slog.Logger
	now        func() time.Time
}

func NewGate(store Store, allowances AllowanceSource, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{store: store, allowances: allowances, logger: logger, now: time.Now}
}

// Reserve atomically debits units from the account's remaining allowance
// for the current billing period. Fails with QuotaExceeded when committed
// plus reserved usage would exceed the allowance.
func (g *Gate) Reserve(ctx context.Context, accountID uuid.UUID, units int) (uuid.UUID, error) {
	allowance, err := g.allowances.GetAllowance(ctx, accountID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get allowance: %w", err)
	}

	period := PeriodStart(g.now())
	id, err := g.store.Reserve(ctx, accountID, period, allowance, units)
	if err != nil {
		g.logger.Warn("quota.reserve.denied",
			"account_id", accountID, "units", units, "allowance", allowance, "error", err)
		return uuid.Nil, err
	}
	g.logger.Info("quota.reserved",
		"account_id", accountID, "reservation_id", id, "units", units, "allowance", allowance)
	return id, nil
}

// Commit transitions Reserved to Committed. Committing an already-committed
// reservation is a no-op.
func (g *Gate) Commit(ctx context.Context, reservationID uuid.UUID) error {
	if err := g.store.Commit(ctx, reservationID); err != nil {
		return err
	}
	g.logger.Info("quota.committed", "reservation_id", reservationID)
	return nil
}

// Release transitions Reserved to Released, returning the units to the
// account's allowance. Idempotent.
func (g *Gate) Release(ctx context.Context, reservationID uuid.UUID) error {
	if err := g.store.Release(ctx, reservationID); err != nil {
		return err
	}
	g.logger.Info("quota.released", "reservation_id", reservationID)
	return nil
}

// PeriodStart truncates t to the start of its billing period: the first of
// the calendar month, UTC.
func PeriodStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ExceededError wraps QuotaExceeded with the observed numbers for an
// actionable caller-facing message.
func ExceededError(allowance, used int) error {
	return fmt.Errorf("%w: %d of %d analyses used this period", common.ErrQuotaExceeded, used, allowance)
}
