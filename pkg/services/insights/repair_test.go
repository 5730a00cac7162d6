package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

func TestIsRepairAttempt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{name: "sorry", text: "I'm sorry, let's talk", expected: true},
		{name: "case insensitive", text: "SORRY about that", expected: true},
		{name: "substring not whole word", text: "apologizes profusely", expected: true},
		{name: "multi word phrase", text: "okay, can we restart this conversation", expected: true},
		{name: "extended scorer phrase", text: "that was my fault entirely", expected: true},
		{name: "no repair phrase", text: "whatever, forget it", expected: false},
		{name: "empty text", text: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRepairAttempt(tt.text))
		})
	}
}

func TestRepairRate(t *testing.T) {
	// Rupture at a fixed instant; now is the next day so the 7-day window
	// covers everything.
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		records          []domain.Record
		expectedRate     float64
		expectedRuptures int
		expectedRepaired int
	}{
		{
			name:         "no ruptures yields a perfect rate",
			records:      []domain.Record{textRecord(at(t0), "neutral", "hello")},
			expectedRate: 1.0,
		},
		{
			name:         "empty snapshot yields a perfect rate",
			records:      nil,
			expectedRate: 1.0,
		},
		{
			name: "rupture repaired within an hour",
			records: []domain.Record{
				textRecord(at(t0), "alert", "this is unacceptable"),
				textRecord(at(t0.Add(time.Hour)), "neutral", "I'm sorry, let's talk"),
			},
			expectedRate:     1.0,
			expectedRuptures: 1,
			expectedRepaired: 1,
		},
		{
			name: "repair outside the 24h lookahead does not count",
			records: []domain.Record{
				textRecord(at(t0.Add(-26*time.Hour)), "alert", "this is unacceptable"),
				textRecord(at(t0.Add(-time.Hour)), "neutral", "I'm sorry, let's talk"),
			},
			expectedRate:     0.0,
			expectedRuptures: 1,
			expectedRepaired: 0,
		},
		{
			name: "one repair answers only the first rupture",
			records: []domain.Record{
				textRecord(at(t0), "alert", "you never listen"),
				textRecord(at(t0.Add(10*time.Minute)), "angry", "I said you never listen"),
				textRecord(at(t0.Add(time.Hour)), "neutral", "sorry, you're right"),
			},
			expectedRate:     1.0,
			expectedRuptures: 2,
			expectedRepaired: 2,
		},
		{
			name: "unrepaired rupture drags the rate down",
			records: []domain.Record{
				textRecord(at(t0), "alert", "you never listen"),
				textRecord(at(t0.Add(time.Hour)), "neutral", "I'm sorry"),
				textRecord(at(t0.Add(26*time.Hour)), "caution", "here we go again"),
			},
			expectedRate:     0.5,
			expectedRuptures: 2,
			expectedRepaired: 1,
		},
		{
			name: "ruptures older than seven days are out of scope",
			records: []domain.Record{
				textRecord(at(now.Add(-8*24*time.Hour)), "alert", "old fight"),
			},
			expectedRate: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RepairRate(tt.records, now)
			assert.InDelta(t, tt.expectedRate, result.Rate, 1e-9)
			assert.Equal(t, tt.expectedRuptures, result.RuptureCount)
			assert.Equal(t, tt.expectedRepaired, result.RepairedCount)
		})
	}
}

func TestRepairRate_ExactLookaheadBoundaryCounts(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	records := []domain.Record{
		textRecord(at(t0), "alert", "this is unacceptable"),
		textRecord(at(t0.Add(24*time.Hour)), "neutral", "I'm sorry"),
	}

	// timestamp <= t0+24h is inside the pairing window.
	result := RepairRate(records, now)
	assert.Equal(t, 1.0, result.Rate)
	assert.Equal(t, 1, result.RepairedCount)
}
