package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/bidkiller/dce-analyzer/internal/repository"
)

// Janitor periodically fails PENDING results that have stopped making
// progress, releasing their quota reservations. Covers process crashes
// mid-run, where the in-process finalize path never fired.
type Janitor struct {
	analyses   repository.AnalysisRepository
	staleAfter time.Duration
	interval   time.Duration
	logger     *slog.Logger
}

func NewJanitor(analyses repository.AnalysisRepository, staleAfter, interval time.Duration, logger *slog.Logger) *Janitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Janitor{analyses: analyses, staleAfter: staleAfter, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, sweeping on every tick.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	j.logger.Info("janitor.started", "stale_after", j.staleAfter, "interval", j.interval)
	for {
		select {
		case <-ctx.Done():
			j.logger.Info("janitor.stopped")
			return
		case <-ticker.C:
			n, err := j.analyses.FailStale(ctx, j.staleAfter)
			if err != nil {
				j.logger.Error("janitor.sweep_failed", "error", err)
				continue
			}
			if n > 0 {
				j.logger.Warn("janitor.expired_stale", "count", n)
			}
		}
	}
}
