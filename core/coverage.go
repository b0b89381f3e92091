package core

import (
	"strings"

	"github.com/dietmarja/curricula/schema"
)

// AnalyzeCoverage summarizes a competency-driven selection: credit total,
// mean combined relevance, EQF distribution, and the fraction of required
// topics covered. A required topic counts as covered when its text appears
// in a selected module's name or in one of its topic entries. An empty
// selection yields a zeroed report; an empty required-topics set reports
// 100% coverage by convention.
func AnalyzeCoverage(scored []schema.ScoredModule, requiredTopics []string) schema.CoverageReport {
	report := schema.CoverageReport{
		EQFDistribution: make(map[int]int),
		RequiredTopics:  len(requiredTopics),
	}
	if len(scored) == 0 {
		if len(requiredTopics) == 0 {
			report.TopicCoveragePercent = 100
		}
		return report
	}

	var scoreSum float64
	for _, sm := range scored {
		report.TotalECTS += sm.ECTS
		scoreSum += sm.TotalScore
		report.EQFDistribution[sm.EQFLevel]++
	}
	report.AverageRelevance = scoreSum / float64(len(scored))

	covered := make(map[string]struct{})
	for _, sm := range scored {
		name := strings.ToLower(sm.Title)
		for _, reqTopic := range requiredTopics {
			reqLower := strings.ToLower(reqTopic)
			if strings.Contains(name, reqLower) || topicsContain(sm.Topics, reqLower) {
				covered[reqLower] = struct{}{}
			}
		}
	}
	report.CoveredTopics = len(covered)

	if len(requiredTopics) == 0 {
		report.TopicCoveragePercent = 100
	} else {
		report.TopicCoveragePercent = float64(report.CoveredTopics) / float64(len(requiredTopics)) * 100
	}
	return report
}

// AnalyzeKeywordCoverage summarizes a direct-mode selection. With no
// required-topics set to measure against, coverage is computed over the
// topic's domain keyword set: a keyword counts as covered when some
// selected module lists it.
func AnalyzeKeywordCoverage(scored []schema.ScoredModule, topic string, similar Similarity) schema.CoverageReport {
	kws := topicKeywords(topic, similar)
	report := schema.CoverageReport{
		EQFDistribution: make(map[int]int),
		RequiredTopics:  len(kws),
	}
	if len(scored) == 0 {
		if len(kws) == 0 {
			report.TopicCoveragePercent = 100
		}
		return report
	}

	var scoreSum float64
	for _, sm := range scored {
		report.TotalECTS += sm.ECTS
		scoreSum += sm.TotalScore
		report.EQFDistribution[sm.EQFLevel]++
	}
	report.AverageRelevance = scoreSum / float64(len(scored))

	kwSet := keywordSet(kws)
	covered := make(map[string]struct{})
	for _, sm := range scored {
		for _, kw := range sm.Keywords {
			lower := strings.ToLower(kw)
			if _, ok := kwSet[lower]; ok {
				covered[lower] = struct{}{}
			}
		}
	}
	report.CoveredTopics = len(covered)

	if len(kws) == 0 {
		report.TopicCoveragePercent = 100
	} else {
		report.TopicCoveragePercent = float64(len(covered)) / float64(len(kws)) * 100
	}
	return report
}

// topicsContain reports whether any topic entry contains the lowercased
// needle.
func topicsContain(topics []string, needle string) bool {
	for _, t := range topics {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
