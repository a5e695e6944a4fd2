package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Facade exposes the subset of application functionality required by the
// refresher.
type Facade interface {
	RefreshEligibility(ctx context.Context) (int, error)
}

// EligibilityRefresher periodically recomputes time-derived eligibility flags
// so they do not go stale between explicit loads. Cancel and return windows
// close purely through elapsed time; the UI reads whatever flags the
// collection currently carries.
type EligibilityRefresher struct {
	facade   Facade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewEligibilityRefresher constructs the refresher.
func NewEligibilityRefresher(facade Facade, interval time.Duration, logger *slog.Logger) *EligibilityRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &EligibilityRefresher{facade: facade, interval: interval, logger: logger}
}

// Start launches the background refresh loop.
func (r *EligibilityRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(runCtx)
}

// Stop halts the loop and waits for it to finish.
func (r *EligibilityRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *EligibilityRefresher) run(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *EligibilityRefresher) refresh(ctx context.Context) {
	changed, err := r.facade.RefreshEligibility(ctx)
	if err != nil {
		r.logger.Error("eligibility refresh failed", slog.String("error", err.Error()))
		return
	}
	if changed > 0 {
		r.logger.Info("eligibility flags refreshed", slog.Int("orders_changed", changed))
	}
}
