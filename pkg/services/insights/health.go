package insights

import (
	"strings"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

// Neutral defaults shown to users whose window is empty. A brand-new user
// must never see a zero or an error; they see an encouraging baseline that
// real data then adjusts.
const (
	defaultCommunicationScore    = 0.75
	defaultEmotionalSupportScore = 0.8
	defaultConnectionScore       = 0.8
	defaultOverallScore          = 0.8
)

// Bounded windows per sub-score. Each metric looks at a slice of the most
// recent records rather than the whole log.
const (
	communicationWindow = 30
	supportWindow       = 30
	connectionWindow    = 20
	overallWindow       = 50
)

// HealthOptions selects the relationship-specific keyword set and, when a
// partner's data is linked, supplies the externally computed compatibility
// score that the overall score is averaged with.
type HealthOptions struct {
	Relationship  domain.RelationshipType
	Compatibility *float64
}

// HealthScore derives the composite health breakdown. Every sub-score is an
// independent fraction over its own bounded window; none depends on another.
func HealthScore(records []domain.Record, opts HealthOptions) domain.HealthScore {
	return domain.HealthScore{
		Overall:          overallScore(records, opts.Compatibility),
		Communication:    communicationScore(records),
		EmotionalSupport: emotionalSupportScore(records),
		Connection:       connectionScore(records, opts.Relationship),
	}
}

// communicationScore is the fraction of recent records carrying a positive
// emotional tone.
func communicationScore(records []domain.Record) float64 {
	recent := mostRecent(records, communicationWindow)
	if len(recent) == 0 {
		return defaultCommunicationScore
	}

	positive := 0
	for _, rec := range recent {
		if _, ok := positiveTones[rec.EmotionalTone]; ok {
			positive++
		}
	}
	return float64(positive) / float64(len(recent))
}

// emotionalSupportScore averages two independent signals: supportive keywords
// in the text, and a clear/positive tone.
func emotionalSupportScore(records []domain.Record) float64 {
	recent := mostRecent(records, supportWindow)
	if len(recent) == 0 {
		return defaultEmotionalSupportScore
	}

	keywordHits := 0
	toneHits := 0
	for _, rec := range recent {
		if containsAny(rec.Text, supportKeywords) {
			keywordHits++
		}
		if _, ok := clearTones[rec.Tone]; ok {
			toneHits++
		}
	}

	n := float64(len(recent))
	return (float64(keywordHits)/n + float64(toneHits)/n) / 2
}

// connectionScore is the fraction of recent records containing the
// relationship-type-specific keyword set. Couples measure connection,
// co-parents measure cooperation; the computation is identical.
func connectionScore(records []domain.Record, relationship domain.RelationshipType) float64 {
	recent := mostRecent(records, connectionWindow)
	if len(recent) == 0 {
		return defaultConnectionScore
	}

	keywords := coupleConnectionKeywords
	if relationship == domain.RelationshipCoParent {
		keywords = coParentCooperationKeywords
	}

	hits := 0
	for _, rec := range recent {
		if containsAny(rec.Text, keywords) {
			hits++
		}
	}
	return float64(hits) / float64(len(recent))
}

// overallScore averages each record's clamped confidence, nudged up or down
// for strongly positive or negative emotional tones. When a compatibility
// score from a linked partner is supplied, the result is the mean of both.
func overallScore(records []domain.Record, compatibility *float64) float64 {
	recent := mostRecent(records, overallWindow)
	if len(recent) == 0 {
		return defaultOverallScore
	}

	sum := 0.0
	for _, rec := range recent {
		score := rec.Confidence
		if _, ok := stronglyPositiveTones[rec.EmotionalTone]; ok {
			score += overallToneAdjustment
		} else if _, ok := stronglyNegativeTones[rec.EmotionalTone]; ok {
			score -= overallToneAdjustment
		}
		sum += min(max(score, 0), 1)
	}
	base := sum / float64(len(recent))

	if compatibility != nil {
		base = (base + min(max(*compatibility, 0), 1)) / 2
	}
	return base
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
