package core

import (
	"testing"

	"github.com/dietmarja/curricula/schema"
	"github.com/stretchr/testify/assert"
)

// TestTopicRelevanceCarbonModule verifies that a carbon accounting module
// scores well against a carbon measurement topic.
func TestTopicRelevanceCarbonModule(t *testing.T) {
	m := schema.Module{
		ID:          "M1",
		Title:       "Carbon Footprint Measurement Basics",
		Description: "Learn to measure and report carbon emissions across scopes",
		Topics:      []string{"Carbon Footprint Measurement", "GHG Reporting"},
		Keywords:    []string{"carbon", "footprint", "scope"},
	}

	score := TopicRelevance(&m, "Carbon Footprint Measurement", JaccardSimilar)
	assert.GreaterOrEqual(t, score, 20.0, "Relevant module should score at least 20")
	assert.LessOrEqual(t, score, 100.0, "Topic score is capped at 100")
}

// TestTopicRelevanceUnrelatedModule verifies that a module with no lexical
// overlap scores zero.
func TestTopicRelevanceUnrelatedModule(t *testing.T) {
	m := schema.Module{
		ID:          "M2",
		Title:       "Blockchain Basics",
		Description: "Introduction to distributed ledgers and consensus protocols",
	}

	score := TopicRelevance(&m, "Carbon Footprint Measurement", JaccardSimilar)
	assert.Less(t, score, 10.0, "Unrelated module should score near zero")
}

// TestTopicRelevanceCap verifies the 100-point cap with a module that
// matches on every field.
func TestTopicRelevanceCap(t *testing.T) {
	m := schema.Module{
		ID:    "M3",
		Title: "Carbon Footprint Measurement",
		Description: "Carbon footprint measurement, emission assessment, environmental " +
			"monitoring, GHG reporting and lifecycle data analysis",
		ExtendedDescription: "Carbon footprint measurement in depth with scope tracking",
		Topics:              []string{"Carbon Footprint Measurement"},
		Keywords:            []string{"carbon", "footprint", "measurement", "emission", "assessment"},
	}

	score := TopicRelevance(&m, "Carbon Footprint Measurement", JaccardSimilar)
	assert.Equal(t, 100.0, score, "Score should saturate at 100")
}

// TestRoleRelevance verifies the role table lookup.
func TestRoleRelevance(t *testing.T) {
	m := schema.Module{
		ID:            "M4",
		Title:         "Sustainability Data Analysis",
		RoleRelevance: map[string]int{"DAN": 85, "DSL": 40},
	}

	assert.Equal(t, 85.0, RoleRelevance(&m, "DAN"))
	assert.Equal(t, 40.0, RoleRelevance(&m, "DSL"))
	assert.Equal(t, 0.0, RoleRelevance(&m, "XYZ"), "Unknown role should score 0")
}

// TestScoreModules verifies that scoring annotates every module and weights
// the combined score by the default topic/role split.
func TestScoreModules(t *testing.T) {
	catalogue := []schema.Module{
		{
			ID:            "M1",
			Title:         "Green Software Development",
			Description:   "Energy efficient and sustainable programming",
			RoleRelevance: map[string]int{"DAN": 50},
		},
		{
			ID:    "M2",
			Title: "Medieval History",
		},
	}

	scored := ScoreModules(catalogue, "Green Software Development", "DAN", JaccardSimilar)
	assert.Len(t, scored, 2, "Every catalogue module should be scored")

	assert.Greater(t, scored[0].TopicScore, scored[1].TopicScore,
		"Green software module should out-score the unrelated one on topic")
	assert.Equal(t, 5.0, scored[0].RoleScore, "Role table value scales to 0-10")
	assert.Equal(t, 0.0, scored[1].RoleScore)

	weights := schema.DefaultSelectionWeights(schema.CompetencyDrivenMode)
	expected := scored[0].TopicScore*weights[schema.TopicWeight] + scored[0].RoleScore*weights[schema.RoleWeight]
	assert.InDelta(t, expected, scored[0].TotalScore, 0.0001, "Combined score should follow the weight split")
}
