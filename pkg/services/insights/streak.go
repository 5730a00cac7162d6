package insights

import (
	"time"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

const dayKeyLayout = "2006-01-02"

// SecureStreak counts consecutive calendar days with zero ruptures, ending
// today. Days are local dates in now's location. A day with no records at all
// breaks the streak; the engine cannot tell "no conflict" apart from "no
// data", so it fails closed. The same policy applies to today: a day that has
// produced no records yet contributes nothing, so a brand-new user sees a
// streak of zero rather than an optimistic guess.
func SecureStreak(records []domain.Record, now time.Time) domain.SecureStreak {
	secureByDay := make(map[string]bool)
	for _, rec := range records {
		if rec.Timestamp == nil {
			continue
		}
		key := rec.Timestamp.In(now.Location()).Format(dayKeyLayout)
		if IsRupture(rec) {
			secureByDay[key] = false
		} else if _, seen := secureByDay[key]; !seen {
			secureByDay[key] = true
		}
	}

	streak := 0
	for day := now; ; day = day.AddDate(0, 0, -1) {
		secure, present := secureByDay[day.Format(dayKeyLayout)]
		if !present || !secure {
			break
		}
		streak++
	}

	return domain.SecureStreak{Days: streak}
}
