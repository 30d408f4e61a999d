package quota

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/constants"
	"github.com/bidkiller/dce-analyzer/internal/common"
)

type periodKey struct {
	accountID uuid.UUID
	period    time.Time
}

type counters struct {
	reserved  int
	committed int
}

type memReservation struct {
	key   periodKey
	units int
	state constants.ReservationState
}

// MemoryStore is a mutex-guarded in-process Store. Used by tests and by
// single-node deployments without a database.
type MemoryStore struct {
	mu           sync.Mutex
	usage        map[periodKey]*counters
	reservations map[uuid.UUID]*memReservation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		usage:        make(map[periodKey]*counters),
		reservations: make(map[uuid.UUID]*memReservation),
	}
}

func (s *MemoryStore) Reserve(_ context.Context, accountID uuid.UUID, periodStart time.Time, allowance, units int) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := periodKey{accountID: accountID, period: periodStart}
	c := s.usage[key]
	if c == nil {
		c = &counters{}
		s.usage[key] = c
	}
	if c.committed+c.reserved+units > allowance {
		return uuid.Nil, ExceededError(allowance, c.committed+c.reserved)
	}
	c.reserved += units

	id := uuid.New()
	s.reservations[id] = &memReservation{key: key, units: units, state: constants.ReservationReserved}
	return id, nil
}

func (s *MemoryStore) Commit(_ context.Context, reservationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[reservationID]
	if !ok {
		return fmt.Errorf("%w: reservation %s", common.ErrNotFound, reservationID)
	}
	switch r.state {
	case constants.ReservationCommitted:
		return nil
	case constants.ReservationReleased:
		return fmt.Errorf("%w: reservation %s already released", common.ErrInvalidInput, reservationID)
	}
	c := s.usage[r.key]
	c.reserved -= r.units
	c.committed += r.units
	r.state = constants.ReservationCommitted
	return nil
}

func (s *MemoryStore) Release(_ context.Context, reservationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[reservationID]
	if !ok {
		return fmt.Errorf("%w: reservation %s", common.ErrNotFound, reservationID)
	}
	switch r.state {
	case constants.ReservationReleased:
		return nil
	case constants.ReservationCommitted:
		return fmt.Errorf("%w: reservation %s already committed", common.ErrInvalidInput, reservationID)
	}
	c := s.usage[r.key]
	c.reserved -= r.units
	r.state = constants.ReservationReleased
	return nil
}

// Usage returns the committed and reserved counters for an account period.
func (s *MemoryStore) Usage(accountID uuid.UUID, periodStart time.Time) (committed, reserved int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.usage[periodKey{accountID: accountID, period: periodStart}]; c != nil {
		return c.committed, c.reserved
	}
	return 0, 0
}
