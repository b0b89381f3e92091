// Package schema has configs, models and global variables for all parts of curricula.
package schema

// Module represents a single learning module in the catalogue.
// It carries the descriptive text used for relevance scoring, the credit
// weight and EQF level used by the selector, and the per-role relevance
// table maintained by the catalogue authors. Instances are immutable after
// loading; the selector annotates copies, never the originals.
type Module struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	ExtendedDescription string         `json:"extended_description,omitempty"`
	Topics              []string       `json:"topics,omitempty"`
	Keywords            []string       `json:"keywords,omitempty"`
	Skills              []string       `json:"skills,omitempty"`
	ECTS                float64        `json:"ects"`
	EQFLevel            int            `json:"eqf_level"`
	ThematicArea        string         `json:"thematic_area,omitempty"`
	RoleRelevance       map[string]int `json:"role_relevance,omitempty"`
	LearningOutcomes    []string       `json:"learning_outcomes,omitempty"`
}

// ScoredModule is a Module annotated with the relevance scores computed
// during a single selection run. Scored copies are transient; they are
// created per run and discarded afterwards.
type ScoredModule struct {
	Module
	TopicScore float64 `json:"topic_score"` // Topic relevance, 0-100
	RoleScore  float64 `json:"role_score"`  // Role relevance on the combined scale
	TotalScore float64 `json:"total_score"` // Weighted combination of the above
}

// CompetencyRequirement names one competency that a curriculum should cover.
// Each entry in RequiredModuleTopics is resolved to at most one catalogue
// module by the requirement matcher.
type CompetencyRequirement struct {
	Name                 string   `json:"name"`
	RequiredModuleTopics []string `json:"required_modules"`
	LearningOutcomes     []string `json:"learning_outcomes,omitempty"`
}

// CompetencyProfile groups the competency requirements extracted from an
// educational profile, plus any standalone required topics that are not
// tied to a named competency.
type CompetencyProfile struct {
	Competencies   []CompetencyRequirement `json:"competencies"`
	RequiredTopics []string                `json:"required_topics,omitempty"`
}

// Empty reports whether the profile carries no usable requirements.
func (p *CompetencyProfile) Empty() bool {
	if p == nil {
		return true
	}
	return len(p.Competencies) == 0 && len(p.RequiredTopics) == 0
}

// AllRequiredTopics returns the union of standalone required topics and the
// per-competency module requirements, preserving first-seen order.
func (p *CompetencyProfile) AllRequiredTopics() []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	add := func(t string) {
		if t == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, c := range p.Competencies {
		for _, t := range c.RequiredModuleTopics {
			add(t)
		}
	}
	for _, t := range p.RequiredTopics {
		add(t)
	}
	return out
}

// SelectionResult is the engine's only externally visible contract.
// Modules are in selection order, not relevance order.
type SelectionResult struct {
	Modules  []Module          `json:"modules"`
	Metadata SelectionMetadata `json:"metadata"`
}

// SelectionMetadata describes how a selection run went: which mode ran,
// how close the credit total came to the target, and the coverage and
// quality statistics computed by the analyzer. Budget shortfalls are
// reported here rather than raised as errors.
type SelectionMetadata struct {
	SelectionMode         SelectionMode      `json:"selection_mode"`
	TotalModules          int                `json:"total_modules"`
	TotalECTS             float64            `json:"total_ects"`
	TargetECTS            float64            `json:"target_ects"`
	ECTSEfficiencyPercent float64            `json:"ects_efficiency_percent"` // Capped at 100
	Coverage              CoverageReport     `json:"coverage"`
	Distribution          ModuleDistribution `json:"module_distribution"`
	TopicAnalysis         TopicAnalysis      `json:"topic_analysis"`
	Quality               QualityIndicators  `json:"quality_indicators"`
}

// CoverageReport summarizes how well a selection covers the requested
// topics. An empty selection yields a zeroed report; a run with no
// required topics reports 100% coverage by convention.
type CoverageReport struct {
	TotalECTS            float64     `json:"total_ects"`
	AverageRelevance     float64     `json:"average_relevance"`
	EQFDistribution      map[int]int `json:"eqf_distribution"`
	RequiredTopics       int         `json:"required_topics"`
	CoveredTopics        int         `json:"covered_topics"`
	TopicCoveragePercent float64     `json:"topic_coverage_percent"`
}

// ModuleDistribution counts how selected modules split between the
// competency-matched set and the topic-relevance fill set.
type ModuleDistribution struct {
	CompetencyModules int `json:"competency_modules"`
	TopicFillModules  int `json:"topic_fill_modules"`
}

// TopicAnalysis carries per-run topic relevance statistics.
type TopicAnalysis struct {
	TargetTopic           string  `json:"target_topic"`
	AverageTopicRelevance float64 `json:"average_topic_relevance"`
	HighRelevanceModules  int     `json:"high_relevance_modules"` // Topic score above 60
}

// QualityIndicators gives a coarse verdict on selection quality for
// report headers.
type QualityIndicators struct {
	TopicCoverage     CoverageBand `json:"topic_coverage"`
	ThematicDiversity int          `json:"thematic_diversity"` // Distinct thematic areas
}
