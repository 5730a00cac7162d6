package api

import "time"

type SecureStreak struct {
	Days int `json:"days"`
}

type RepairRate struct {
	Rate          float64 `json:"rate"`
	RuptureCount  int     `json:"rupture_count"`
	RepairedCount int     `json:"repaired_count"`
}

type HeatmapSlot struct {
	Weekday string  `json:"weekday"`
	Period  string  `json:"period"`
	Tension float64 `json:"tension"`
}

type ConflictMatrix struct {
	Cells   [7][24]float64 `json:"cells"`
	Best    *HeatmapSlot   `json:"best,omitempty"`
	Worst   *HeatmapSlot   `json:"worst,omitempty"`
	Insight string         `json:"insight,omitempty"`
}

type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type HealthScore struct {
	Overall          float64 `json:"overall"`
	Communication    float64 `json:"communication"`
	EmotionalSupport float64 `json:"emotional_support"`
	Connection       float64 `json:"connection"`
}

type InsightsReport struct {
	Window      string         `json:"window"`
	GeneratedAt time.Time      `json:"generated_at"`
	RecordCount int            `json:"record_count"`
	Streak      SecureStreak   `json:"streak"`
	Repair      RepairRate     `json:"repair"`
	Heatmap     ConflictMatrix `json:"heatmap"`
	Topics      []TopicCount   `json:"topics"`
	Health      HealthScore    `json:"health"`
}
