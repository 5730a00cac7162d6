package domain

import "time"

// SecureStreak is the number of consecutive secure calendar days ending today.
type SecureStreak struct {
	Days int
}

// RepairRate is the fraction of ruptures in the last seven days that were
// followed by a repair attempt within the pairing window.
type RepairRate struct {
	Rate          float64
	RuptureCount  int
	RepairedCount int
}

// HeatmapSlot names a weekday/period cell picked out of the conflict matrix.
type HeatmapSlot struct {
	Weekday string
	Period  string // morning, afternoon, evening
	Tension float64
}

// ConflictMatrix is a 7x24 grid of averaged tension scores. Rows are weekdays
// with Monday at index 0, columns are hours of the day. Cells with no records
// hold zero.
type ConflictMatrix struct {
	Cells   [7][24]float64
	Counts  [7][24]int
	Best    *HeatmapSlot
	Worst   *HeatmapSlot
	Insight string
}

// TopicCount is a trigger-topic bucket with the number of tense messages
// classified into it.
type TopicCount struct {
	Topic string
	Count int
}

// TopicRanking lists trigger topics in descending order of count. An empty
// ranking is a valid state: no tense messages in the window.
type TopicRanking struct {
	Topics []TopicCount
}

// HealthScore is the composite health breakdown. All fields are in [0,1].
// Empty inputs resolve to optimistic neutral defaults rather than zeros.
type HealthScore struct {
	Overall          float64
	Communication    float64
	EmotionalSupport float64
	Connection       float64
}

// InsightsReport bundles every derived metric computed for one dashboard
// refresh. It is recomputed from scratch on each refresh or window change.
type InsightsReport struct {
	Window      Window
	GeneratedAt time.Time
	RecordCount int
	Streak      SecureStreak
	Repair      RepairRate
	Heatmap     ConflictMatrix
	Topics      TopicRanking
	Health      HealthScore
}
