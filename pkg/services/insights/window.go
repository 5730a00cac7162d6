package insights

import (
	"time"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

// FilterWindow restricts records to those whose timestamp parses and falls
// strictly after now minus the window duration. WindowAll returns the input
// slice unchanged, untimestamped records included, which makes filtering by
// "all time" idempotent. Records without a usable timestamp are silently
// dropped from bounded windows; that is policy, not an error.
func FilterWindow(records []domain.Record, now time.Time, window domain.Window) []domain.Record {
	duration, bounded := window.Duration()
	if !bounded {
		return records
	}

	cutoff := now.Add(-duration)
	filtered := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if rec.Timestamp == nil {
			continue
		}
		if rec.Timestamp.After(cutoff) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
