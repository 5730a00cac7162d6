package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

func emotionalRecord(emotionalTone string, confidence float64) domain.Record {
	return domain.Record{
		Timestamp:     at(fixedNow),
		Tone:          "neutral",
		EmotionalTone: emotionalTone,
		Confidence:    confidence,
	}
}

func TestHealthScore_EmptySnapshotDefaults(t *testing.T) {
	score := HealthScore(nil, HealthOptions{Relationship: domain.RelationshipCouple})

	// New users see optimistic baselines, never zeros.
	assert.Equal(t, defaultOverallScore, score.Overall)
	assert.Equal(t, defaultCommunicationScore, score.Communication)
	assert.Equal(t, defaultEmotionalSupportScore, score.EmotionalSupport)
	assert.Equal(t, defaultConnectionScore, score.Connection)
}

func TestCommunicationScore(t *testing.T) {
	records := []domain.Record{
		emotionalRecord("happy", 0.5),
		emotionalRecord("supportive", 0.5),
		emotionalRecord("frustrated", 0.5),
		emotionalRecord("neutral", 0.5),
	}

	assert.InDelta(t, 0.5, communicationScore(records), 1e-9)
}

func TestEmotionalSupportScore_AveragesTwoSignals(t *testing.T) {
	records := []domain.Record{
		// keyword hit, no tone hit
		{Timestamp: at(fixedNow), Tone: "neutral", Text: "I'm here to support you"},
		// tone hit, no keyword hit
		{Timestamp: at(fixedNow), Tone: "clear", Text: "see you at six"},
	}

	// keyword fraction 0.5, tone fraction 0.5, averaged.
	assert.InDelta(t, 0.5, emotionalSupportScore(records), 1e-9)
}

func TestConnectionScore_RelationshipSets(t *testing.T) {
	records := []domain.Record{
		{Timestamp: at(fixedNow), Tone: "neutral", Text: "can you do the school pickup tomorrow"},
		{Timestamp: at(fixedNow), Tone: "neutral", Text: "random chatter"},
	}

	couple := connectionScore(records, domain.RelationshipCouple)
	coParent := connectionScore(records, domain.RelationshipCoParent)

	assert.InDelta(t, 0.0, couple, 1e-9)
	assert.InDelta(t, 0.5, coParent, 1e-9)
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.Record
		expected float64
	}{
		{
			name:     "plain confidence average",
			records:  []domain.Record{emotionalRecord("neutral", 0.4), emotionalRecord("neutral", 0.6)},
			expected: 0.5,
		},
		{
			name:     "strongly positive tone lifts the score",
			records:  []domain.Record{emotionalRecord("happy", 0.5)},
			expected: 0.7,
		},
		{
			name:     "strongly negative tone lowers the score",
			records:  []domain.Record{emotionalRecord("angry", 0.5)},
			expected: 0.3,
		},
		{
			name:     "adjusted score clamps at 1",
			records:  []domain.Record{emotionalRecord("happy", 0.95)},
			expected: 1.0,
		},
		{
			name:     "adjusted score clamps at 0",
			records:  []domain.Record{emotionalRecord("alert", 0.1)},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, overallScore(tt.records, nil), 1e-9)
		})
	}
}

func TestOverallScore_AveragedWithCompatibility(t *testing.T) {
	records := []domain.Record{emotionalRecord("neutral", 0.6)}
	compatibility := 0.8

	assert.InDelta(t, 0.7, overallScore(records, &compatibility), 1e-9)
}

func TestHealthScore_ScoresStayInRange(t *testing.T) {
	records := []domain.Record{
		emotionalRecord("happy", 1.5),  // confidence already clamped upstream, but guard anyway
		emotionalRecord("angry", -0.5), // ditto
	}

	score := HealthScore(records, HealthOptions{Relationship: domain.RelationshipCouple})

	for _, v := range []float64{score.Overall, score.Communication, score.EmotionalSupport, score.Connection} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
