package insights

import (
	"sort"
	"strings"

	"github.com/unsaid-tools/tone-atlas/pkg/models/domain"
)

// topicRecordLimit bounds the classification to the most recent records so
// the cost of the regex pass stays flat as the log grows.
const topicRecordLimit = 200

// TriggerTopics buckets tense records into coarse subjects using the ordered
// pattern table and ranks the buckets by count. Only ruptures are classified.
// An empty ranking just means no tense messages in the window.
func TriggerTopics(records []domain.Record) domain.TopicRanking {
	recent := mostRecent(records, topicRecordLimit)

	counts := make(map[string]int)
	for _, rec := range recent {
		if !IsRupture(rec) {
			continue
		}
		counts[classifyTopic(rec.Text)]++
	}

	topics := make([]domain.TopicCount, 0, len(counts))
	for topic, count := range counts {
		topics = append(topics, domain.TopicCount{Topic: topic, Count: count})
	}
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Topic < topics[j].Topic
	})

	return domain.TopicRanking{Topics: topics}
}

// classifyTopic assigns exactly one topic; the table order decides ties, so a
// message mentioning both money and work lands in Money.
func classifyTopic(text string) string {
	lowered := strings.ToLower(text)
	for _, pattern := range topicPatterns {
		if pattern.re.MatchString(lowered) {
			return pattern.topic
		}
	}
	return topicOther
}

// mostRecent returns up to n records ordered newest first. Timestamped records
// sort by time; untimestamped ones keep their snapshot order at the tail, so
// they are still counted when the window has room for them.
func mostRecent(records []domain.Record, n int) []domain.Record {
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Timestamp, sorted[j].Timestamp
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.After(*b)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
