package adapters

import (
	"github.com/unsaid-tools/tone-atlas/pkg/models/api"
	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

func MapInsightsReportDomainToApi(report domain.InsightsReport) api.InsightsReport {
	return api.InsightsReport{
		Window:      string(report.Window),
		GeneratedAt: report.GeneratedAt,
		RecordCount: report.RecordCount,
		Streak:      api.SecureStreak{Days: report.Streak.Days},
		Repair:      MapRepairRateDomainToApi(report.Repair),
		Heatmap:     MapConflictMatrixDomainToApi(report.Heatmap),
		Topics:      MapTopicRankingDomainToApi(report.Topics),
		Health:      MapHealthScoreDomainToApi(report.Health),
	}
}

func MapRepairRateDomainToApi(r domain.RepairRate) api.RepairRate {
	return api.RepairRate{
		Rate:          r.Rate,
		RuptureCount:  r.RuptureCount,
		RepairedCount: r.RepairedCount,
	}
}

func MapConflictMatrixDomainToApi(m domain.ConflictMatrix) api.ConflictMatrix {
	return api.ConflictMatrix{
		Cells:   m.Cells,
		Best:    mapHeatmapSlot(m.Best),
		Worst:   mapHeatmapSlot(m.Worst),
		Insight: m.Insight,
	}
}

func mapHeatmapSlot(slot *domain.HeatmapSlot) *api.HeatmapSlot {
	if slot == nil {
		return nil
	}
	return &api.HeatmapSlot{
		Weekday: slot.Weekday,
		Period:  slot.Period,
		Tension: slot.Tension,
	}
}

func MapTopicRankingDomainToApi(ranking domain.TopicRanking) []api.TopicCount {
	topics := make([]api.TopicCount, 0, len(ranking.Topics))
	for _, t := range ranking.Topics {
		topics = append(topics, api.TopicCount{Topic: t.Topic, Count: t.Count})
	}
	return topics
}

func MapHealthScoreDomainToApi(h domain.HealthScore) api.HealthScore {
	return api.HealthScore{
		Overall:          h.Overall,
		Communication:    h.Communication,
		EmotionalSupport: h.EmotionalSupport,
		Connection:       h.Connection,
	}
}
