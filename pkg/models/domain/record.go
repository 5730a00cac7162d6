package domain

import "time"

// Record is a normalized analysis record. The ingestion boundary (pkg/adapters)
// resolves the raw export's field synonyms and defaults exactly once:
//   - Tone:      toneStatus, falling back to dominantTone, falling back to "neutral"
//   - Text:      originalText, falling back to originalMessage (first non-empty wins)
//   - Confidence: clamped to [0,1], 0.5 when absent
//
// Timestamp is nil when the raw value was missing or unparsable; such records
// are excluded from time-windowed computations but still participate in
// non-temporal aggregates.
type Record struct {
	ID            string
	Timestamp     *time.Time
	Tone          string
	EmotionalTone string
	Confidence    float64
	Text          string
	Suggestions   []string
}

type RecordStats struct {
	RecordsCount    int64
	FirstRecordTime *time.Time
}

// Window is a named relative timeframe selectable from the dashboards.
type Window string

const (
	WindowDay     Window = "24h"
	WindowWeek    Window = "7d"
	WindowMonth   Window = "30d"
	WindowQuarter Window = "90d"
	WindowAll     Window = "all"
)

// Duration returns the window length and whether the window is bounded.
// WindowAll reports false: no cutoff applies.
func (w Window) Duration() (time.Duration, bool) {
	switch w {
	case WindowDay:
		return 24 * time.Hour, true
	case WindowWeek:
		return 7 * 24 * time.Hour, true
	case WindowMonth:
		return 30 * 24 * time.Hour, true
	case WindowQuarter:
		return 90 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Valid reports whether w is one of the named windows.
func (w Window) Valid() bool {
	switch w {
	case WindowDay, WindowWeek, WindowMonth, WindowQuarter, WindowAll:
		return true
	}
	return false
}

// RelationshipType selects the keyword set used by the connection sub-score.
type RelationshipType string

const (
	RelationshipCouple   RelationshipType = "couple"
	RelationshipCoParent RelationshipType = "coparent"
)
