package insights

import (
	"fmt"
	"time"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

// weekdayNames is indexed Monday-first, matching the matrix rows.
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ConflictHeatmap averages tension scores into a weekday-by-hour matrix and
// picks out the calmest (lowest nonzero) and tensest cells for a one-sentence
// insight. Records are bucketed by their local hour in now's location, the
// same convention the streak uses for day keys, so a UTC-stored timestamp
// lands in the user's evening rather than the server's. Untimestamped records
// cannot be placed on the grid and are skipped.
func ConflictHeatmap(records []domain.Record, now time.Time) domain.ConflictMatrix {
	var matrix domain.ConflictMatrix

	var sums [7][24]float64
	for _, rec := range records {
		if rec.Timestamp == nil {
			continue
		}
		local := rec.Timestamp.In(now.Location())
		day := mondayIndex(local.Weekday())
		hour := local.Hour()
		sums[day][hour] += TensionScore(rec)
		matrix.Counts[day][hour]++
	}

	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			if n := matrix.Counts[day][hour]; n > 0 {
				matrix.Cells[day][hour] = sums[day][hour] / float64(n)
			}
		}
	}

	matrix.Best, matrix.Worst = pickSlots(matrix)
	if matrix.Best != nil && matrix.Worst != nil {
		matrix.Insight = fmt.Sprintf(
			"Tension runs highest on %s %ss and lowest on %s %ss.",
			matrix.Worst.Weekday, matrix.Worst.Period,
			matrix.Best.Weekday, matrix.Best.Period,
		)
	}

	return matrix
}

func pickSlots(matrix domain.ConflictMatrix) (best, worst *domain.HeatmapSlot) {
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			if matrix.Counts[day][hour] == 0 {
				continue
			}
			value := matrix.Cells[day][hour]
			slot := domain.HeatmapSlot{
				Weekday: weekdayNames[day],
				Period:  periodOfDay(hour),
				Tension: value,
			}
			if value > 0 && (best == nil || value < best.Tension) {
				s := slot
				best = &s
			}
			if worst == nil || value > worst.Tension {
				s := slot
				worst = &s
			}
		}
	}
	return best, worst
}

func periodOfDay(hour int) string {
	switch {
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// mondayIndex maps Go's Sunday-first weekday to the Monday-first row
// convention used across the dashboards.
func mondayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}
