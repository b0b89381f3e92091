package core

import (
	"github.com/dietmarja/curricula/schema"
)

// Selection thresholds shared by both modes. The selector is a best-effort
// heuristic: it never fails on "cannot meet budget", it reports the
// shortfall through metadata instead.
const (
	fillRelevanceThreshold = 10.0 // minimum combined score for topic fill
	fillOverage            = 1.2  // per-module fit allowance in fill passes
	directOverage          = 1.1  // per-module fit allowance in direct mode
	directStopFraction     = 0.9  // direct mode stops once this close to target
	directRetryFraction    = 0.8  // below this, direct mode runs a second pass
	directCloseEnoughECTS  = 5.0  // second pass stops within this of target
	backfillTriggerFrac    = 0.8  // backfill engages below this credit fraction
	backfillTargetFrac     = 0.9  // backfill stops at this credit fraction

	eqfPenaltyPerLevel  = 15.0 // direct mode EQF proximity penalty
	highRelevanceCutoff = 60.0 // topic score counted as high relevance
)

// Selector chooses catalogue modules against a selection request. The
// catalogue is read-only; every run produces scored copies and leaves the
// originals untouched, so a single Selector may serve concurrent requests.
type Selector struct {
	catalogue []schema.Module
	weights   map[schema.SelectionMode]map[schema.WeightKey]float64
	similar   Similarity
}

// Option configures a Selector.
type Option func(*Selector)

// WithSimilarity swaps the fuzzy label matcher.
func WithSimilarity(fn Similarity) Option {
	return func(s *Selector) { s.similar = fn }
}

// WithWeights overrides the combined-score weight splits per mode.
// Missing modes keep their defaults.
func WithWeights(weights map[schema.SelectionMode]map[schema.WeightKey]float64) Option {
	return func(s *Selector) {
		for mode, w := range weights {
			s.weights[mode] = w
		}
	}
}

// NewSelector builds a Selector over an immutable catalogue snapshot.
func NewSelector(catalogue []schema.Module, opts ...Option) *Selector {
	s := &Selector{
		catalogue: catalogue,
		weights: map[schema.SelectionMode]map[schema.WeightKey]float64{
			schema.CompetencyDrivenMode: schema.DefaultSelectionWeights(schema.CompetencyDrivenMode),
			schema.DirectTopicRoleMode:  schema.DefaultSelectionWeights(schema.DirectTopicRoleMode),
		},
		similar: JaccardSimilar,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Request describes one selection run.
type Request struct {
	Role       string                    // short role code, e.g. "DSL"
	Topic      string                    // free-text target topic
	EQFLevel   int                       // requested EQF level, 4-8
	TargetECTS float64                   // target credit total
	Profile    *schema.CompetencyProfile // nil or empty selects direct mode
}

// Select runs competency-driven selection when the request carries a
// competency profile, and falls back to direct topic/role selection
// otherwise. An empty catalogue yields an empty result, not an error.
func (s *Selector) Select(req Request) schema.SelectionResult {
	if req.Profile.Empty() {
		return s.selectDirect(req)
	}
	return s.selectCompetencyDriven(req)
}

// selectCompetencyDriven first resolves every competency requirement to a
// module, then fills the remaining credit budget with topic-relevant
// modules, then backfills to the minimum count and credit thresholds.
func (s *Selector) selectCompetencyDriven(req Request) schema.SelectionResult {
	used := make(map[string]struct{})
	var selected []schema.Module

	// Phase 1: one module per competency requirement.
	for _, comp := range req.Profile.Competencies {
		for _, reqTopic := range comp.RequiredModuleTopics {
			m, ok := s.findBestModuleForRequirement(reqTopic, req.EQFLevel, used)
			if !ok {
				continue
			}
			selected = append(selected, m)
			used[m.ID] = struct{}{}
		}
	}

	// Standalone required topics that no selected module already names.
	for _, reqTopic := range req.Profile.RequiredTopics {
		if matchesSelectedName(selected, reqTopic) {
			continue
		}
		m, ok := s.findBestModuleForRequirement(reqTopic, req.EQFLevel, used)
		if !ok {
			continue
		}
		selected = append(selected, m)
		used[m.ID] = struct{}{}
	}

	competencyCount := len(selected)

	// Phase 2: fill remaining credits with topic-relevant modules.
	remaining := req.TargetECTS - schema.TotalECTS(selected)
	if remaining > 0 {
		selected = s.fillByTopic(selected, used, req, remaining)
	}

	// Phase 3: backfill to minimum module count and credit thresholds.
	minModules := minModulesCompetency(req.TargetECTS)
	selected = s.backfill(selected, used, req.EQFLevel, req.TargetECTS, minModules)

	requiredTopics := req.Profile.AllRequiredTopics()
	return s.buildResult(selected, req, schema.CompetencyDrivenMode, requiredTopics, competencyCount)
}

// fillByTopic greedily adds unused, EQF-compatible modules by descending
// combined topic/role score until the remaining budget is consumed.
func (s *Selector) fillByTopic(selected []schema.Module, used map[string]struct{}, req Request, remaining float64) []schema.Module {
	weights := s.weights[schema.CompetencyDrivenMode]

	var candidates []scoredCandidate
	for i := range s.catalogue {
		m := s.catalogue[i]
		if _, ok := used[m.ID]; ok {
			continue
		}
		if !eqfCompatible(m.EQFLevel, req.EQFLevel) {
			continue
		}
		topicScore := TopicRelevance(&m, req.Topic, s.similar)
		roleScore := RoleRelevance(&m, req.Role)
		combined := topicScore*weights[schema.TopicWeight] + roleScore*weights[schema.RoleWeight]
		if combined > fillRelevanceThreshold {
			candidates = append(candidates, scoredCandidate{module: m, score: combined})
		}
	}
	sortByScore(candidates)

	var filled float64
	for _, c := range candidates {
		if filled >= remaining {
			break
		}
		if filled+c.module.ECTS <= remaining*fillOverage {
			selected = append(selected, c.module)
			used[c.module.ID] = struct{}{}
			filled += c.module.ECTS
		}
	}
	return selected
}

// backfill adds EQF-compatible modules in catalogue order until the
// selection meets the minimum module count and the credit floor, or the
// catalogue is exhausted. Backfilled modules are not scored; they exist
// purely to meet the thresholds.
func (s *Selector) backfill(selected []schema.Module, used map[string]struct{}, eqfLevel int, targetECTS float64, minModules int) []schema.Module {
	current := schema.TotalECTS(selected)
	if len(selected) >= minModules && current >= targetECTS*backfillTriggerFrac {
		return selected
	}

	for i := range s.catalogue {
		m := s.catalogue[i]
		if _, ok := used[m.ID]; ok {
			continue
		}
		if !eqfCompatible(m.EQFLevel, eqfLevel) {
			continue
		}

		needCount := len(selected) < minModules
		needCredits := current < targetECTS*backfillTargetFrac
		if !needCount && !needCredits {
			break
		}

		selected = append(selected, m)
		used[m.ID] = struct{}{}
		current += m.ECTS
	}
	return selected
}

// selectDirect scores every module on topic, role and EQF proximity, then
// greedily assembles a selection around the credit target.
func (s *Selector) selectDirect(req Request) schema.SelectionResult {
	weights := s.weights[schema.DirectTopicRoleMode]

	var candidates []scoredCandidate
	for i := range s.catalogue {
		m := s.catalogue[i]
		topicScore := TopicRelevance(&m, req.Topic, s.similar)
		roleScore := RoleRelevance(&m, req.Role)
		eqfScore := eqfProximityScore(m.EQFLevel, req.EQFLevel)
		combined := topicScore*weights[schema.TopicWeight] +
			roleScore*weights[schema.RoleWeight] +
			eqfScore*weights[schema.EQFWeight]
		if combined > 0 {
			candidates = append(candidates, scoredCandidate{module: m, score: combined})
		}
	}
	sortByScore(candidates)

	used := make(map[string]struct{})
	var selected []schema.Module
	var current float64

	// First pass: accept by descending score while the module fits within
	// the overage band, stopping once close enough to target.
	for _, c := range candidates {
		if current >= req.TargetECTS*directStopFraction {
			break
		}
		if current+c.module.ECTS <= req.TargetECTS*directOverage {
			selected = append(selected, c.module)
			used[c.module.ID] = struct{}{}
			current += c.module.ECTS
		}
	}

	// Second pass: when well under target, admit smaller modules until
	// within a few credits of the target.
	if current < req.TargetECTS*directRetryFraction {
		remaining := req.TargetECTS - current
		for _, c := range candidates {
			if _, ok := used[c.module.ID]; ok {
				continue
			}
			if c.module.ECTS <= remaining*fillOverage {
				selected = append(selected, c.module)
				used[c.module.ID] = struct{}{}
				current += c.module.ECTS
				remaining = req.TargetECTS - current
				if remaining <= directCloseEnoughECTS {
					break
				}
			}
		}
	}

	// Enforce the minimum module count with arbitrary leftovers.
	minModules := minModulesDirect(req.TargetECTS)
	for _, c := range candidates {
		if len(selected) >= minModules {
			break
		}
		if _, ok := used[c.module.ID]; ok {
			continue
		}
		selected = append(selected, c.module)
		used[c.module.ID] = struct{}{}
	}

	return s.buildResult(selected, req, schema.DirectTopicRoleMode, nil, 0)
}

// buildResult scores the final selection and assembles the metadata
// contract handed to renderers.
func (s *Selector) buildResult(selected []schema.Module, req Request, mode schema.SelectionMode, requiredTopics []string, competencyCount int) schema.SelectionResult {
	scored := ScoreModules(selected, req.Topic, req.Role, s.similar)

	var coverage schema.CoverageReport
	if mode == schema.CompetencyDrivenMode {
		coverage = AnalyzeCoverage(scored, requiredTopics)
	} else {
		coverage = AnalyzeKeywordCoverage(scored, req.Topic, s.similar)
	}

	var topicSum float64
	var highRelevance int
	for _, sm := range scored {
		topicSum += sm.TopicScore
		if sm.TopicScore > highRelevanceCutoff {
			highRelevance++
		}
	}
	var avgTopic float64
	if len(scored) > 0 {
		avgTopic = topicSum / float64(len(scored))
	}

	totalECTS := schema.TotalECTS(selected)
	return schema.SelectionResult{
		Modules: selected,
		Metadata: schema.SelectionMetadata{
			SelectionMode:         mode,
			TotalModules:          len(selected),
			TotalECTS:             totalECTS,
			TargetECTS:            req.TargetECTS,
			ECTSEfficiencyPercent: efficiencyForSelection(selected, totalECTS, req.TargetECTS),
			Coverage:              coverage,
			Distribution: schema.ModuleDistribution{
				CompetencyModules: competencyCount,
				TopicFillModules:  len(selected) - competencyCount,
			},
			TopicAnalysis: schema.TopicAnalysis{
				TargetTopic:           req.Topic,
				AverageTopicRelevance: avgTopic,
				HighRelevanceModules:  highRelevance,
			},
			Quality: schema.QualityIndicators{
				TopicCoverage:     coverageBand(avgTopic),
				ThematicDiversity: schema.ThematicAreas(selected),
			},
		},
	}
}

// efficiencyForSelection reports credit efficiency, with the empty
// selection pinned to 0 so shortfalls are visible even for zero targets.
func efficiencyForSelection(selected []schema.Module, totalECTS, targetECTS float64) float64 {
	if len(selected) == 0 {
		return 0
	}
	return schema.EfficiencyPercent(totalECTS, targetECTS)
}

// eqfProximityScore penalizes distance from the requested EQF level.
func eqfProximityScore(moduleLevel, requestedLevel int) float64 {
	diff := moduleLevel - requestedLevel
	if diff < 0 {
		diff = -diff
	}
	score := 100.0 - eqfPenaltyPerLevel*float64(diff)
	if score < 0 {
		return 0
	}
	return score
}

// coverageBand maps average topic relevance to a coarse verdict.
func coverageBand(avgRelevance float64) schema.CoverageBand {
	switch {
	case avgRelevance > 50:
		return schema.HighCoverage
	case avgRelevance > 30:
		return schema.MediumCoverage
	default:
		return schema.LowCoverage
	}
}

// matchesSelectedName reports whether a required topic is already the name
// of a selected module.
func matchesSelectedName(selected []schema.Module, reqTopic string) bool {
	for _, m := range selected {
		if m.Title == reqTopic {
			return true
		}
	}
	return false
}

// minModulesCompetency is the module-count floor for competency mode.
func minModulesCompetency(targetECTS float64) int {
	return max(6, int(targetECTS)/15)
}

// minModulesDirect is the module-count floor for direct mode.
func minModulesDirect(targetECTS float64) int {
	return max(3, int(targetECTS)/10)
}
