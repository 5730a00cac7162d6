package adapters

import (
	"slices"
	"strings"
	"time"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
	"github.com/unsaid-tools/tone-atlas/pkg/models/store"
)

const (
	defaultTone       = "neutral"
	defaultConfidence = 0.5
)

// timestampLayouts are the formats the keyboard export has been observed to
// emit. Tried in order; the first that parses wins.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// MapStoreRecordToDomain normalizes a raw analysis record. This is the single
// place where field synonyms, defaults, and timestamp parsing are resolved;
// downstream metric functions rely on the normalized shape only.
func MapStoreRecordToDomain(rec store.AnalysisRecord) domain.Record {
	return domain.Record{
		ID:            rec.ID,
		Timestamp:     parseTimestamp(rec.Timestamp),
		Tone:          resolveTone(rec.ToneStatus, rec.DominantTone),
		EmotionalTone: strings.ToLower(strings.TrimSpace(rec.EmotionalTone)),
		Confidence:    resolveConfidence(rec.Confidence),
		Text:          firstNonEmpty(rec.OriginalText, rec.OriginalMessage),
		Suggestions:   slices.Clone(rec.Suggestions),
	}
}

func MapStoreRecordsToDomain(recs []store.AnalysisRecord) []domain.Record {
	out := make([]domain.Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, MapStoreRecordToDomain(rec))
	}
	return out
}

// parseTimestamp returns nil for missing or unparsable values. Malformed
// timestamps never abort ingestion; the owning record is simply excluded from
// time-dependent computations.
func parseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func resolveTone(toneStatus, dominantTone string) string {
	if tone := strings.ToLower(strings.TrimSpace(toneStatus)); tone != "" {
		return tone
	}
	if tone := strings.ToLower(strings.TrimSpace(dominantTone)); tone != "" {
		return tone
	}
	return defaultTone
}

func resolveConfidence(confidence *float64) float64 {
	if confidence == nil {
		return defaultConfidence
	}
	return min(max(*confidence, 0), 1)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
