package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/constants"
)

// QuotaReservation is a provisional debit against an account's allowance
// for the current billing period.
type QuotaReservation struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Units       int
	State       constants.ReservationState
	PeriodStart time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
