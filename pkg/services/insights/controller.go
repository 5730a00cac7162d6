package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/unsaid-tools/tone-atlas/pkg/adapters"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
	"github.com/unsaid-tools/tone-atlas/pkg/store/duckdb/records"
)

// Controller binds a record store to the pure metric functions. Fetching the
// snapshot and computing over it are deliberately two steps: the engine only
// ever sees an already-materialized, immutable slice.
type Controller interface {
	GetReport(ctx context.Context, opts ReportOptions) (domain.InsightsReport, error)
	GetStats(ctx context.Context) (*domain.RecordStats, error)
}

type controller struct {
	store records.Store
	now   func() time.Time
}

// NewController creates a controller over a profile-bound record store.
// nowFn defaults to time.Now; tests inject a fixed clock for determinism.
func NewController(store records.Store, nowFn func() time.Time) (Controller, error) {
	if store == nil {
		return nil, fmt.Errorf("record store must be provided")
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &controller{store: store, now: nowFn}, nil
}

func (c *controller) GetReport(ctx context.Context, opts ReportOptions) (domain.InsightsReport, error) {
	if opts.Window != "" && !opts.Window.Valid() {
		return domain.InsightsReport{}, fmt.Errorf("unsupported window: %s", opts.Window)
	}

	raw, err := c.store.GetRecords(ctx)
	if err != nil {
		return domain.InsightsReport{}, fmt.Errorf("fetch snapshot: %w", err)
	}

	snapshot := adapters.MapStoreRecordsToDomain(raw)
	return ComputeReport(snapshot, c.now(), opts), nil
}

func (c *controller) GetStats(ctx context.Context) (*domain.RecordStats, error) {
	stats, err := c.store.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch record stats: %w", err)
	}
	return &domain.RecordStats{
		RecordsCount:    stats.RecordsCount,
		FirstRecordTime: stats.FirstRecordTime,
	}, nil
}
