package insights

import (
	"strings"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

// IsRupture reports whether the record's tone classifies as tense/negative.
func IsRupture(rec domain.Record) bool {
	_, ok := ruptureTones[normalizeTone(rec.Tone)]
	return ok
}

// TensionScore maps the record's tone to a continuous [0,1] severity.
// Unknown tones score the baseline.
func TensionScore(rec domain.Record) float64 {
	if score, ok := tensionScores[normalizeTone(rec.Tone)]; ok {
		return score
	}
	return baselineTension
}

func normalizeTone(tone string) string {
	tone = strings.ToLower(strings.TrimSpace(tone))
	if tone == "" {
		return "neutral"
	}
	return tone
}
