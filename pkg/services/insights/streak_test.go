package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

func onDay(daysAgo int, hour int) *time.Time {
	return at(time.Date(2024, 1, 15-daysAgo, hour, 0, 0, 0, time.UTC))
}

func TestSecureStreak(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.Record
		expected int
	}{
		{
			name:     "empty snapshot has no streak",
			records:  nil,
			expected: 0,
		},
		{
			name: "three consecutive secure days",
			records: []domain.Record{
				record(onDay(0, 9), "neutral"),
				record(onDay(1, 20), "clear"),
				record(onDay(2, 8), "neutral"),
			},
			expected: 3,
		},
		{
			name: "missing day breaks the streak",
			records: []domain.Record{
				record(onDay(0, 9), "neutral"),
				// no records yesterday
				record(onDay(2, 8), "neutral"),
			},
			expected: 1,
		},
		{
			name: "today without records is not yet secure",
			records: []domain.Record{
				record(onDay(1, 9), "neutral"),
				record(onDay(2, 9), "neutral"),
			},
			expected: 0,
		},
		{
			name: "rupture today resets the streak",
			records: []domain.Record{
				record(onDay(0, 9), "alert"),
				record(onDay(1, 9), "neutral"),
			},
			expected: 0,
		},
		{
			name: "one rupture poisons an otherwise calm day",
			records: []domain.Record{
				record(onDay(0, 9), "neutral"),
				record(onDay(1, 8), "neutral"),
				record(onDay(1, 21), "angry"),
				record(onDay(2, 9), "neutral"),
			},
			expected: 1,
		},
		{
			name: "untimestamped records cannot anchor a day",
			records: []domain.Record{
				record(nil, "neutral"),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SecureStreak(tt.records, fixedNow).Days)
		})
	}
}

func TestSecureStreak_RuptureOrderWithinDayIsIrrelevant(t *testing.T) {
	records := []domain.Record{
		record(onDay(0, 21), "angry"),
		record(onDay(0, 9), "neutral"),
	}

	assert.Equal(t, 0, SecureStreak(records, fixedNow).Days)
}
