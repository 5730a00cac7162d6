package insights

import (
	"time"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

// ReportOptions parameterize a full report computation.
type ReportOptions struct {
	Window        domain.Window
	Relationship  domain.RelationshipType
	Compatibility *float64
}

// ComputeReport runs every metric over one snapshot. The heatmap, topics, and
// health scores see the snapshot filtered by the selected window. The repair
// rate and the streak always see the full snapshot: the repair rate carries
// its own fixed seven-day window, and the streak walks back from today however
// far the calm days reach, regardless of the dashboard's timeframe. Pure
// function: identical (records, now, opts) always produce an identical report.
func ComputeReport(records []domain.Record, now time.Time, opts ReportOptions) domain.InsightsReport {
	window := opts.Window
	if !window.Valid() {
		window = domain.WindowAll
	}

	scoped := FilterWindow(records, now, window)

	return domain.InsightsReport{
		Window:      window,
		GeneratedAt: now,
		RecordCount: len(scoped),
		Streak:      SecureStreak(records, now),
		Repair:      RepairRate(records, now),
		Heatmap:     ConflictHeatmap(scoped, now),
		Topics:      TriggerTopics(scoped),
		Health: HealthScore(scoped, HealthOptions{
			Relationship:  opts.Relationship,
			Compatibility: opts.Compatibility,
		}),
	}
}
