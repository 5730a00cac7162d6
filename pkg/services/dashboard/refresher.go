package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
	"github.com/unsaid-tools/tone-atlas/pkg/services/insights"
)

// Refresher coordinates dashboard refreshes over an async snapshot fetch.
// When the user flips the window selector while a previous fetch is still in
// flight, only the most recently initiated refresh may commit its result:
// each refresh takes a generation number under the lock, and a stale
// generation silently discards its report instead of clobbering a newer one.
//
// A failed fetch commits the same report an empty snapshot produces, so "no
// data yet" and "fetch failed" look identical to the dashboard: encouraging
// defaults, never an error state.
type Refresher struct {
	provider insights.Controller
	now      func() time.Time

	mu         sync.Mutex
	generation uint64
	current    domain.InsightsReport
	hasReport  bool
}

func NewRefresher(provider insights.Controller, nowFn func() time.Time) *Refresher {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Refresher{provider: provider, now: nowFn}
}

// Refresh starts an asynchronous fetch-and-compute and returns a channel that
// delivers the computed report and closes. The caller decides whether to
// await it; the displayed state is updated by the refresher itself, under the
// last-write-wins rule.
func (r *Refresher) Refresh(ctx context.Context, opts insights.ReportOptions) <-chan domain.InsightsReport {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	provider := r.provider
	r.mu.Unlock()

	out := make(chan domain.InsightsReport, 1)
	go func() {
		defer close(out)

		report, err := provider.GetReport(ctx, opts)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("snapshot fetch failed, falling back to empty-snapshot defaults")
			report = insights.ComputeReport(nil, r.now(), opts)
		}

		r.mu.Lock()
		if gen == r.generation {
			r.current = report
			r.hasReport = true
		}
		r.mu.Unlock()

		out <- report
	}()
	return out
}

// Current returns the last committed report, if any.
func (r *Refresher) Current() (domain.InsightsReport, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.hasReport
}
