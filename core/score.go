package core

import (
	"strings"

	"github.com/dietmarja/curricula/schema"
)

// Additive points for topic relevance scoring. Keyword overlap is scored
// per shared token, weighted by which module field the token came from.
const (
	nameTokenPoints     = 4.0
	descTokenPoints     = 2.5
	topicsTokenPoints   = 5.0
	keywordTokenPoints  = 5.0
	extendedTokenPoints = 2.0

	directNamePoints = 20.0
	directDescPoints = 15.0

	carbonNameBoost   = 10.0
	carbonDescBoost   = 6.0
	carbonTopicsBoost = 8.0

	exactTopicPoints = 25.0
	topicWordPoints  = 8.0

	maxTopicScore = 100.0
)

// carbonBoostTerms get extra points when the requested topic mentions
// carbon. The list is fixed; it tracks the vocabulary of carbon accounting
// catalogue entries.
var carbonBoostTerms = []string{
	"carbon", "footprint", "emission", "measurement",
	"assessment", "environmental", "data",
}

// TopicRelevance computes how relevant a module is to a free-text topic.
// The score accumulates over case-insensitive token and substring checks
// against the topic's keyword set and is capped at 100. A module with no
// lexical overlap scores 0.
func TopicRelevance(m *schema.Module, topic string, similar Similarity) float64 {
	kws := keywordSet(topicKeywords(topic, similar))

	name := strings.ToLower(m.Title)
	desc := strings.ToLower(m.Description)
	extended := strings.ToLower(m.ExtendedDescription)
	topicsText := strings.ToLower(strings.Join(m.Topics, " "))

	var score float64

	// Token overlap between module fields and the topic keyword set.
	score += float64(overlap(tokens(name), kws)) * nameTokenPoints
	score += float64(overlap(tokens(desc), kws)) * descTokenPoints
	if len(m.Topics) > 0 {
		score += float64(overlap(tokens(topicsText), kws)) * topicsTokenPoints
	}
	if len(m.Keywords) > 0 {
		score += float64(overlap(keywordSet(m.Keywords), kws)) * keywordTokenPoints
	}
	if extended != "" {
		score += float64(overlap(tokens(extended), kws)) * extendedTokenPoints
	}

	// Verbatim topic mention in the primary fields.
	topicLower := strings.ToLower(topic)
	if strings.Contains(name, topicLower) {
		score += directNamePoints
	}
	if strings.Contains(desc, topicLower) {
		score += directDescPoints
	}

	// Carbon topics get extra weight for the accounting vocabulary.
	if strings.Contains(topicLower, "carbon") {
		for _, term := range carbonBoostTerms {
			if strings.Contains(name, term) {
				score += carbonNameBoost
			}
			if strings.Contains(desc, term) {
				score += carbonDescBoost
			}
			if strings.Contains(topicsText, term) {
				score += carbonTopicsBoost
			}
		}
	}

	// Exact or fuzzy topic match in the module's topics array, counted once.
	for _, mt := range m.Topics {
		if similar(topic, mt) {
			score += exactTopicPoints
			break
		}
	}

	// Per-word bonus anywhere in the concatenated text fields.
	allText := name + " " + desc + " " + extended
	for _, word := range strings.Fields(topicLower) {
		if len(word) > 2 && strings.Contains(allText, word) {
			score += topicWordPoints
		}
	}

	return min(score, maxTopicScore)
}

// RoleRelevance returns the module's relevance to a role straight from its
// role table, on the 0-100 scale. Unknown roles score 0.
func RoleRelevance(m *schema.Module, role string) float64 {
	return float64(m.RoleRelevance[role])
}

// ScoreModules annotates every catalogue module with topic, role and
// combined relevance scores. The role table value is scaled to 0-10 before
// weighting against the 0-100 topic score; the topic/role split comes from
// the competency-mode weights.
func ScoreModules(catalogue []schema.Module, topic, role string, similar Similarity) []schema.ScoredModule {
	weights := schema.DefaultSelectionWeights(schema.CompetencyDrivenMode)
	scored := make([]schema.ScoredModule, 0, len(catalogue))
	for i := range catalogue {
		m := catalogue[i]
		topicScore := TopicRelevance(&m, topic, similar)
		roleScore := RoleRelevance(&m, role) / 10.0
		scored = append(scored, schema.ScoredModule{
			Module:     m,
			TopicScore: topicScore,
			RoleScore:  roleScore,
			TotalScore: topicScore*weights[schema.TopicWeight] + roleScore*weights[schema.RoleWeight],
		})
	}
	return scored
}
