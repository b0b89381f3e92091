package core

import (
	"sort"

	"github.com/dietmarja/curricula/schema"
)

// RankModules sorts scored modules by combined score in descending order
// and returns the top 'limit' entries. Ties break on module ID so that
// ranking does not depend on catalogue source ordering.
func RankModules(scored []schema.ScoredModule, limit int) []schema.ScoredModule {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].TotalScore != scored[j].TotalScore {
			return scored[i].TotalScore > scored[j].TotalScore
		}
		return scored[i].ID < scored[j].ID
	})
	if limit > 0 && len(scored) > limit {
		return scored[:limit]
	}
	return scored
}

// sortByScore orders candidates by score descending with the same ID
// tie-break used everywhere in the selector.
func sortByScore(candidates []scoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].module.ID < candidates[j].module.ID
	})
}

// scoredCandidate pairs a catalogue module with a transient selection score.
type scoredCandidate struct {
	module schema.Module
	score  float64
}
