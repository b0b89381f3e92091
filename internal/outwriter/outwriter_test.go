package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dietmarja/curricula/internal/contract"
	"github.com/dietmarja/curricula/schema"
	"github.com/stretchr/testify/assert"
)

// TestCreateFormatters verifies the precision-aware formatter closures.
func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)
	assert.Equal(t, "5.0", fmtFloat(5))
	assert.Equal(t, "2.5", fmtFloat(2.49))
	assert.Equal(t, "%d", intFmt)

	fmtFloat2, _ := createFormatters(2)
	assert.Equal(t, "2.49", fmtFloat2(2.49))
}

// TestRelevanceLabel verifies the color toggle keeps the plain text.
func TestRelevanceLabel(t *testing.T) {
	plain := relevanceLabel(85, false)
	assert.Equal(t, contract.CriticalValue, plain)

	colored := relevanceLabel(85, true)
	assert.Contains(t, colored, contract.CriticalValue)
}

// TestWriteJSON verifies the indented JSON encoding.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"modules": 3})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "  \"modules\": 3")
}

// TestWriteCSVWithHeader verifies header plus rows flow.
func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"a,b", "1,2"}, lines)
}

// TestGetMaxTableTitleWidth verifies the width override and clamping.
func TestGetMaxTableTitleWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "narrow override clamps to minimum", width: 40, want: 15},
		{name: "standard width", width: 100, want: 45},
		{name: "wide terminal clamps to maximum", width: 200, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, getMaxTableTitleWidth(cfg))
		})
	}
}

// TestWriteScoresCSV verifies the scores CSV shape.
func TestWriteScoresCSV(t *testing.T) {
	scored := []schema.ScoredModule{
		{
			Module:     schema.Module{ID: "M1", Title: "Green Software", ECTS: 5, EQFLevel: 6},
			TopicScore: 70,
			RoleScore:  6,
			TotalScore: 44.4,
		},
	}
	fmtFloat, intFmt := createFormatters(1)

	var buf bytes.Buffer
	err := writeScoresCSV(&buf, scored, fmtFloat, intFmt)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, []string{"rank", "id", "title", "ects", "eqf_level", "topic_score", "role_score", "total_score", "label"}, records[0])
	assert.Equal(t, []string{"1", "M1", "Green Software", "5.0", "6", "70.0", "6.0", "44.4", contract.ModerateValue}, records[1])
}

// TestWriteScoresJSON verifies rank and label annotation in JSON output.
func TestWriteScoresJSON(t *testing.T) {
	scored := []schema.ScoredModule{
		{Module: schema.Module{ID: "M1", Title: "A"}, TotalScore: 90},
		{Module: schema.Module{ID: "M2", Title: "B"}, TotalScore: 10},
	}

	var buf bytes.Buffer
	err := writeScoresJSON(&buf, scored)
	assert.NoError(t, err)

	var decoded []map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, float64(1), decoded[0]["rank"])
	assert.Equal(t, contract.CriticalValue, decoded[0]["label"])
	assert.Equal(t, float64(2), decoded[1]["rank"])
	assert.Equal(t, contract.LowValue, decoded[1]["label"])
}

// TestWriteSelectionCSV verifies the selection CSV shape including joined
// topics and the selection mode column.
func TestWriteSelectionCSV(t *testing.T) {
	result := schema.SelectionResult{
		Modules: []schema.Module{
			{ID: "M1", Title: "Green Software", ECTS: 5, EQFLevel: 6,
				ThematicArea: "Software", Topics: []string{"Green", "Energy"}},
		},
		Metadata: schema.SelectionMetadata{SelectionMode: schema.DirectTopicRoleMode},
	}
	fmtFloat, intFmt := createFormatters(1)

	var buf bytes.Buffer
	err := writeSelectionCSV(&buf, result, fmtFloat, intFmt)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Green|Energy", records[1][6], "Topics are pipe-joined")
	assert.Equal(t, "direct_topic_role", records[1][7])
}

// TestWriteMatchesCSV verifies match CSV cells for matched and unmatched
// requirements.
func TestWriteMatchesCSV(t *testing.T) {
	matches := []schema.RequirementMatch{
		{Competency: "Accounting", Requirement: "Carbon Measurement", Matched: true,
			ModuleID: "M1", ModuleTitle: "Carbon Footprint Measurement", ECTS: 5, EQFLevel: 6},
		{Requirement: "Quantum Chemistry", Matched: false},
	}
	fmtFloat, intFmt := createFormatters(1)

	var buf bytes.Buffer
	err := writeMatchesCSV(&buf, matches, fmtFloat, intFmt)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "true", records[1][2])
	assert.Equal(t, "5.0", records[1][5])
	assert.Equal(t, "false", records[2][2])
	assert.Equal(t, "", records[2][5], "Unmatched requirements have empty module cells")
	assert.Equal(t, "", records[2][6])
}

// TestFormatMatchedHelpers verifies the table cell helpers.
func TestFormatMatchedHelpers(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)

	assert.Equal(t, "yes", formatMatched(true))
	assert.Equal(t, "no", formatMatched(false))

	matched := schema.RequirementMatch{Matched: true, ECTS: 7.5, EQFLevel: 7}
	assert.Equal(t, "7.5", formatMatchedECTS(matched, fmtFloat))
	assert.Equal(t, "7", formatMatchedEQF(matched, intFmt))

	unmatched := schema.RequirementMatch{Matched: false, ECTS: 7.5, EQFLevel: 7}
	assert.Equal(t, "", formatMatchedECTS(unmatched, fmtFloat))
	assert.Equal(t, "", formatMatchedEQF(unmatched, intFmt))
}

// TestParquetRequiresOutputFile verifies binary output to stdout is refused.
func TestParquetRequiresOutputFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}

	err := writeSelectionParquet(schema.SelectionResult{}, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "output-file")

	err = writeScoresParquet(nil, cfg)
	assert.Error(t, err)
}
