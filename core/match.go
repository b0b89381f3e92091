package core

import (
	"strings"

	"github.com/dietmarja/curricula/schema"
)

// Additive points for requirement-to-module matching.
const (
	reqNamePoints     = 50.0
	reqDescPoints     = 30.0
	reqTopicPoints    = 40.0
	reqSkillPoints    = 35.0
	reqWordNamePoints = 15.0
	reqWordDescPoints = 10.0
)

// findBestModuleForRequirement resolves one free-text competency
// requirement to the single best-matching unused module. Modules outside
// the EQF compatibility window are rejected outright. Ties keep the
// earliest catalogue entry; catalogue order is deterministic after loading,
// so repeated runs resolve requirements identically.
//
// Returns false when no module scores above zero.
func (s *Selector) findBestModuleForRequirement(requirement string, eqfLevel int, used map[string]struct{}) (schema.Module, bool) {
	reqLower := strings.ToLower(requirement)
	reqWords := strings.Fields(reqLower)

	var best schema.Module
	var bestScore float64
	var found bool

	for i := range s.catalogue {
		m := s.catalogue[i]
		if _, ok := used[m.ID]; ok {
			continue
		}
		if !eqfCompatible(m.EQFLevel, eqfLevel) {
			continue
		}

		name := strings.ToLower(m.Title)
		desc := strings.ToLower(m.Description)

		var score float64
		if strings.Contains(name, reqLower) {
			score += reqNamePoints
		}
		if strings.Contains(desc, reqLower) {
			score += reqDescPoints
		}
		for _, topic := range m.Topics {
			if strings.Contains(strings.ToLower(topic), reqLower) {
				score += reqTopicPoints
			}
		}
		for _, skill := range m.Skills {
			if strings.Contains(strings.ToLower(skill), reqLower) {
				score += reqSkillPoints
			}
		}
		for _, word := range reqWords {
			if len(word) <= 2 {
				continue
			}
			if strings.Contains(name, word) {
				score += reqWordNamePoints
			}
			if strings.Contains(desc, word) {
				score += reqWordDescPoints
			}
		}

		if score > bestScore {
			bestScore = score
			best = m
			found = true
		}
	}

	return best, found
}

// eqfCompatible reports whether a module level sits within the compatibility
// window of the requested level.
func eqfCompatible(moduleLevel, requestedLevel int) bool {
	diff := moduleLevel - requestedLevel
	if diff < 0 {
		diff = -diff
	}
	return diff <= schema.EQFWindow
}
