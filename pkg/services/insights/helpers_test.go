package insights

import (
	"time"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

// fixedNow is a Monday, 12:00 UTC.
var fixedNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func at(t time.Time) *time.Time {
	return &t
}

func record(ts *time.Time, tone string) domain.Record {
	return domain.Record{Timestamp: ts, Tone: tone, Confidence: 0.5}
}

func textRecord(ts *time.Time, tone, text string) domain.Record {
	rec := record(ts, tone)
	rec.Text = text
	return rec
}
