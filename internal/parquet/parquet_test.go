package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dietmarja/curricula/schema"
	"github.com/stretchr/testify/assert"
)

// TestConvertScoredModules verifies the score row mapping.
func TestConvertScoredModules(t *testing.T) {
	scored := []schema.ScoredModule{
		{
			Module:     schema.Module{ID: "M1", Title: "Green Software", ECTS: 5, EQFLevel: 6},
			TopicScore: 70,
			RoleScore:  6,
			TotalScore: 44.4,
		},
	}

	rows := ConvertScoredModules(scored)
	assert.Len(t, rows, 1)
	assert.Equal(t, "M1", rows[0].ModuleID)
	assert.Equal(t, "Green Software", rows[0].Title)
	assert.Equal(t, 5.0, rows[0].ECTS)
	assert.Equal(t, int32(6), rows[0].EQFLevel)
	assert.Equal(t, 70.0, rows[0].TopicScore)
	assert.Equal(t, 44.4, rows[0].TotalScore)
}

// TestConvertSelectionResult verifies run context is stamped on each row and
// the thematic area stays nullable.
func TestConvertSelectionResult(t *testing.T) {
	result := schema.SelectionResult{
		Modules: []schema.Module{
			{ID: "M1", Title: "Green Software", ECTS: 5, EQFLevel: 6,
				ThematicArea: "Software", Topics: []string{"Green", "Energy"}},
			{ID: "M2", Title: "Carbon Footprint Measurement", ECTS: 10, EQFLevel: 7},
		},
		Metadata: schema.SelectionMetadata{
			SelectionMode: schema.CompetencyDrivenMode,
			TargetECTS:    30,
		},
	}

	rows := ConvertSelectionResult(result)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Green|Energy", rows[0].Topics)
	assert.Equal(t, "competency_driven", rows[0].SelectionMode)
	assert.Equal(t, 30.0, rows[0].TargetECTS)
	assert.NotNil(t, rows[0].ThematicArea)
	assert.Equal(t, "Software", *rows[0].ThematicArea)
	assert.Nil(t, rows[1].ThematicArea, "Empty thematic area stays null")
	assert.Equal(t, "", rows[1].Topics)
}

// TestConvertRunRecords verifies the run row mapping including nullable
// role and topic columns.
func TestConvertRunRecords(t *testing.T) {
	when := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	records := []schema.RunRecord{
		{
			ID:                    7,
			RunAt:                 when,
			Role:                  "DAN",
			Topic:                 "Green Software",
			SelectionMode:         schema.DirectTopicRoleMode,
			TotalModules:          6,
			TotalECTS:             30,
			TargetECTS:            30,
			ECTSEfficiencyPercent: 100,
			TopicCoveragePercent:  80,
		},
		{ID: 8, RunAt: when, SelectionMode: schema.CompetencyDrivenMode},
	}

	rows := ConvertRunRecords(records)
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(7), rows[0].RunID)
	assert.True(t, rows[0].RunAt.Equal(when))
	assert.NotNil(t, rows[0].Role)
	assert.Equal(t, "DAN", *rows[0].Role)
	assert.Equal(t, int32(6), rows[0].TotalModules)
	assert.Equal(t, 100.0, rows[0].ECTSEfficiency)
	assert.Nil(t, rows[1].Role, "Empty role stays null")
	assert.Nil(t, rows[1].Topic)
}

// TestWriteScoresParquetFile verifies the writer produces a parquet file.
func TestWriteScoresParquetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.parquet")
	rows := []ScoreRow{
		{ModuleID: "M1", Title: "Green Software", ECTS: 5, EQFLevel: 6, TotalScore: 44.4},
	}

	err := WriteScoresParquet(rows, path)
	assert.NoError(t, err)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Parquet file should not be empty")
}

// TestWriteSelectionParquetBadPath verifies unwritable paths surface an error.
func TestWriteSelectionParquetBadPath(t *testing.T) {
	err := WriteSelectionParquet(nil, "/nonexistent/dir/out.parquet")
	assert.Error(t, err)
}
