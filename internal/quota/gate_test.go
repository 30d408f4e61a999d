package quota

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/internal/common"
)

type fixedAllowance int

func (f fixedAllowance) GetAllowance(context.Context, uuid.UUID) (int, error) {
	return int(f), nil
}

func TestGate_ReserveUpToAllowance(t *testing.T) {
	gate := NewGate(NewMemoryStore(), fixedAllowance(3), nil)
	accountID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := gate.Reserve(ctx, accountID, 1); err != nil {
			t.Fatalf("reserve %d: %v", i+1, err)
		}
	}
	if _, err := gate.Reserve(ctx, accountID, 1); !errors.Is(err, common.ErrQuotaExceeded) {
		t.Fatalf("fourth reserve: got %v, want ErrQuotaExceeded", err)
	}
}

func TestGate_ReleaseReturnsUnit(t *testing.T) {
	gate := NewGate(NewMemoryStore(), fixedAllowance(1), nil)
	accountID := uuid.New()
	ctx := context.Background()

	id, err := gate.Reserve(ctx, accountID, 1)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if _, err := gate.Reserve(ctx, accountID, 1); !errors.Is(err, common.ErrQuotaExceeded) {
		t.Fatalf("second reserve should be denied, got %v", err)
	}
	if err := gate.Release(ctx, id); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := gate.Reserve(ctx, accountID, 1); err != nil {
		t.Fatalf("reserve after release: %v", err)
	}
}

func TestGate_CommitKeepsUnitConsumed(t *testing.T) {
	gate := NewGate(NewMemoryStore(), fixedAllowance(1), nil)
	accountID := uuid.New()
	ctx := context.Background()

	id, err := gate.Reserve(ctx, accountID, 1)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := gate.Commit(ctx, id); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, err := gate.Reserve(ctx, accountID, 1); !errors.Is(err, common.ErrQuotaExceeded) {
		t.Fatalf("reserve after commit: got %v, want ErrQuotaExceeded", err)
	}
}

func TestGate_SettlementIdempotence(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store, fixedAllowance(10), nil)
	accountID := uuid.New()
	ctx := context.Background()

	id, _ := gate.Reserve(ctx, accountID, 1)
	if err := gate.Commit(ctx, id); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := gate.Commit(ctx, id); err != nil {
		t.Fatalf("second commit must be a no-op, got %v", err)
	}
	if err := gate.Release(ctx, id); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("release of committed reservation: got %v, want ErrInvalidInput", err)
	}

	id2, _ := gate.Reserve(ctx, accountID, 1)
	if err := gate.Release(ctx, id2); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := gate.Release(ctx, id2); err != nil {
		t.Fatalf("second release must be a no-op, got %v", err)
	}
	if err := gate.Commit(ctx, id2); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("commit of released reservation: got %v, want ErrInvalidInput", err)
	}
}

func TestGate_ConcurrentReservationsNeverExceed(t *testing.T) {
	const allowance = 20
	gate := NewGate(NewMemoryStore(), fixedAllowance(allowance), nil)
	accountID := uuid.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	granted := make(chan uuid.UUID, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if id, err := gate.Reserve(ctx, accountID, 1); err == nil {
				granted <- id
			}
		}()
	}
	wg.Wait()
	close(granted)

	count := 0
	for range granted {
		count++
	}
	if count != allowance {
		t.Fatalf("%d reservations granted, want exactly %d", count, allowance)
	}
}

func TestGate_UnknownReservation(t *testing.T) {
	gate := NewGate(NewMemoryStore(), fixedAllowance(1), nil)
	if err := gate.Commit(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestPeriodStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{
			in:   time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC),
			want: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			// local time east of UTC on the 1st can belong to the previous UTC month
			in:   time.Date(2026, 3, 1, 0, 30, 0, 0, time.FixedZone("CET", 3600)),
			want: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		if got := PeriodStart(tt.in); !got.Equal(tt.want) {
			t.Errorf("PeriodStart(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
