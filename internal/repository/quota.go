package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/constants"
	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/quota"

	"github.com/bidkiller/dce-analyzer/gen/ent"
	entreservation "github.com/bidkiller/dce-analyzer/gen/ent/quotareservation"
	entusage "github.com/bidkiller/dce-analyzer/gen/ent/quotausage"
)

// quotaStore implements quota.Store on Postgres. The allowance ceiling is
// enforced by a conditional UPDATE on quota_usage.total_units, so two
// concurrent reservations can never jointly exceed the allowance.
type quotaStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQuotaStore(client *ent.Client, logger *slog.Logger) quota.Store {
	return &quotaStore{client: client, logger: logger}
}

func (s *quotaStore) Reserve(ctx context.Context, accountID uuid.UUID, periodStart time.Time, allowance, units int) (uuid.UUID, error) {
	var reservationID uuid.UUID
	err := WithTx(ctx, s.client, func(tx *ent.Tx) error {
		// ensure the period's usage row exists
		err := tx.QuotaUsage.Create().
			SetAccountID(accountID).
			SetPeriodStart(periodStart).
			OnConflictColumns(entusage.FieldAccountID, entusage.FieldPeriodStart).
			DoNothing().
			Exec(ctx)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("ensure usage row: %w", err)
		}

		// the atomic check-allowance-then-increment
		n, err := tx.QuotaUsage.Update().
			Where(
				entusage.AccountID(accountID),
				entusage.PeriodStart(periodStart),
				entusage.TotalUnitsLTE(allowance-units),
			).
			AddTotalUnits(units).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("increment usage: %w", err)
		}
		if n == 0 {
			used := allowance
			if row, qerr := tx.QuotaUsage.Query().
				Where(entusage.AccountID(accountID), entusage.PeriodStart(periodStart)).
				Only(ctx); qerr == nil {
				used = row.TotalUnits
			}
			return quota.ExceededError(allowance, used)
		}

		res, err := tx.QuotaReservation.Create().
			SetAccountID(accountID).
			SetUnits(units).
			SetState(string(constants.ReservationReserved)).
			SetPeriodStart(periodStart).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		reservationID = res.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, nil
}

func (s *quotaStore) Commit(ctx context.Context, reservationID uuid.UUID) error {
	return WithTx(ctx, s.client, func(tx *ent.Tx) error {
		return settleReservation(ctx, tx, reservationID, true)
	})
}

func (s *quotaStore) Release(ctx context.Context, reservationID uuid.UUID) error {
	return WithTx(ctx, s.client, func(tx *ent.Tx) error {
		return settleReservation(ctx, tx, reservationID, false)
	})
}

// settleReservation transitions a reservation out of RESERVED and adjusts
// the usage counters, all inside the caller's transaction. The conditional
// state update makes settlement idempotent: a second commit (or release) of
// the same reservation is a no-op, while a cross transition is an error.
func settleReservation(ctx context.Context, tx *ent.Tx, reservationID uuid.UUID, commit bool) error {
	target := constants.ReservationReleased
	if commit {
		target = constants.ReservationCommitted
	}

	n, err := tx.QuotaReservation.Update().
		Where(
			entreservation.ID(reservationID),
			entreservation.StateEQ(string(constants.ReservationReserved)),
		).
		SetState(string(target)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("transition reservation: %w", err)
	}

	res, err := tx.QuotaReservation.Get(ctx, reservationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: reservation %s", common.ErrNotFound, reservationID)
		}
		return err
	}

	if n == 0 {
		if res.State == string(target) {
			return nil // already settled the same way
		}
		return fmt.Errorf("%w: reservation %s is %s", common.ErrInvalidInput, reservationID, res.State)
	}

	upd := tx.QuotaUsage.Update().
		Where(entusage.AccountID(res.AccountID), entusage.PeriodStart(res.PeriodStart))
	if commit {
		upd = upd.AddCommittedUnits(res.Units)
	} else {
		upd = upd.AddTotalUnits(-res.Units)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("adjust usage counters: %w", err)
	}
	return nil
}
