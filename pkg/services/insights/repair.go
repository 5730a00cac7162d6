package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

const (
	// repairRateWindow is fixed regardless of the dashboard's selected
	// timeframe.
	repairRateWindow = 7 * 24 * time.Hour

	// repairLookahead bounds how long after a rupture a repair attempt still
	// counts as answering it.
	repairLookahead = 24 * time.Hour

	// perfectRepairRate is returned when the window contains no ruptures:
	// nothing to repair is a perfect rate, not a gap in the data.
	perfectRepairRate = 1.0
)

// IsRepairAttempt reports whether the text contains a reconciliatory phrase.
// Matching is case-insensitive substring matching; the first hit
// short-circuits.
func IsRepairAttempt(text string) bool {
	if text == "" {
		return false
	}
	lowered := strings.ToLower(text)
	for _, phrase := range repairPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// RepairRate pairs each rupture in the last seven days with the nearest
// following repair attempt inside the lookahead window and returns the
// repaired fraction. Each rupture is counted at most once: the first matching
// repair wins and scanning stops for that rupture.
func RepairRate(records []domain.Record, now time.Time) domain.RepairRate {
	recent := FilterWindow(records, now, domain.WindowWeek)

	sorted := make([]domain.Record, len(recent))
	copy(sorted, recent)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(*sorted[j].Timestamp)
	})

	ruptures := 0
	repaired := 0
	for i, rec := range sorted {
		if !IsRupture(rec) {
			continue
		}
		ruptures++

		deadline := rec.Timestamp.Add(repairLookahead)
		for _, candidate := range sorted[i+1:] {
			if candidate.Timestamp.After(deadline) {
				break
			}
			if IsRepairAttempt(candidate.Text) {
				repaired++
				break
			}
		}
	}

	if ruptures == 0 {
		return domain.RepairRate{Rate: perfectRepairRate}
	}

	rate := float64(repaired) / float64(ruptures)
	return domain.RepairRate{
		Rate:          min(max(rate, 0), 1),
		RuptureCount:  ruptures,
		RepairedCount: repaired,
	}
}
