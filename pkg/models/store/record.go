package store

import "time"

// AnalysisRecord is the raw per-message tone-analysis record as produced by the
// keyboard extension. Field names follow the upstream export format, including
// its synonyms: Timestamp is kept as the string it arrived with (it may be
// missing or unparsable), and either OriginalText or OriginalMessage may carry
// the message body. Normalization happens once, in pkg/adapters.
type AnalysisRecord struct {
	ID              string
	Timestamp       string
	ToneStatus      string
	DominantTone    string
	EmotionalTone   string
	Confidence      *float64
	OriginalText    string
	OriginalMessage string
	Suggestions     []string
}

type RecordStats struct {
	RecordsCount    int64
	FirstRecordTime *time.Time
}
