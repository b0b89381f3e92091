// Package parquet provides data structures and functions for exporting
// curriculum selections and run history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dietmarja/curricula/schema"
	"github.com/parquet-go/parquet-go"
)

// SelectionRow represents one selected module together with the run context
// it was selected in. One selection run produces one row per module.
type SelectionRow struct {
	// ModuleID is the catalogue identifier of the selected module
	ModuleID string `parquet:"module_id,snappy"`

	// Title is the module title
	Title string `parquet:"title,snappy"`

	// ECTS is the credit weight of the module
	ECTS float64 `parquet:"ects,snappy"`

	// EQFLevel is the module's European Qualifications Framework level
	EQFLevel int32 `parquet:"eqf_level,snappy"`

	// ThematicArea is the module's thematic grouping (nullable)
	ThematicArea *string `parquet:"thematic_area,optional,snappy"`

	// Topics is the module's topic list joined with '|'
	Topics string `parquet:"topics,snappy"`

	// SelectionMode records which selection strategy produced this row
	SelectionMode string `parquet:"selection_mode,snappy"`

	// TargetECTS is the credit target the run aimed for
	TargetECTS float64 `parquet:"target_ects,snappy"`
}

// RunRow represents a single recorded selection run.
// This struct maps to the curricula_runs database table.
type RunRow struct {
	// RunID is the unique identifier for this selection run
	RunID int64 `parquet:"run_id,snappy"`

	// RunAt is when the selection ran (stored as TIMESTAMP with nanosecond precision)
	RunAt time.Time `parquet:"run_at,snappy"`

	// Role is the professional role code the run targeted (nullable)
	Role *string `parquet:"role,optional,snappy"`

	// Topic is the topic the run targeted (nullable)
	Topic *string `parquet:"topic,optional,snappy"`

	// SelectionMode records which selection strategy ran
	SelectionMode string `parquet:"selection_mode,snappy"`

	// TotalModules is the number of modules selected
	TotalModules int32 `parquet:"total_modules,snappy"`

	// TotalECTS is the credit total of the selection
	TotalECTS float64 `parquet:"total_ects,snappy"`

	// TargetECTS is the credit target the run aimed for
	TargetECTS float64 `parquet:"target_ects,snappy"`

	// ECTSEfficiency is how close the selection came to the target, capped at 100
	ECTSEfficiency float64 `parquet:"ects_efficiency,snappy"`

	// TopicCoverage is the percentage of required topics covered
	TopicCoverage float64 `parquet:"topic_coverage,snappy"`
}

// ScoreRow represents one scored module from a catalogue inspection run.
type ScoreRow struct {
	// ModuleID is the catalogue identifier of the scored module
	ModuleID string `parquet:"module_id,snappy"`

	// Title is the module title
	Title string `parquet:"title,snappy"`

	// ECTS is the credit weight of the module
	ECTS float64 `parquet:"ects,snappy"`

	// EQFLevel is the module's European Qualifications Framework level
	EQFLevel int32 `parquet:"eqf_level,snappy"`

	// TopicScore is the topic relevance score, 0-100
	TopicScore float64 `parquet:"topic_score,snappy"`

	// RoleScore is the role relevance score on the combined scale
	RoleScore float64 `parquet:"role_score,snappy"`

	// TotalScore is the weighted combination of topic and role scores
	TotalScore float64 `parquet:"total_score,snappy"`
}

// WriteSelectionParquet writes a slice of SelectionRow structs to a Parquet file.
func WriteSelectionParquet(data []SelectionRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the SelectionRow struct tags
	writer := parquet.NewGenericWriter[SelectionRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRunsParquet writes a slice of RunRow structs to a Parquet file.
func WriteRunsParquet(data []RunRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RunRow struct tags
	writer := parquet.NewGenericWriter[RunRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteScoresParquet writes a slice of ScoreRow structs to a Parquet file.
func WriteScoresParquet(data []ScoreRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ScoreRow struct tags
	writer := parquet.NewGenericWriter[ScoreRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertScoredModules converts schema.ScoredModule to ScoreRow for Parquet export.
func ConvertScoredModules(scored []schema.ScoredModule) []ScoreRow {
	rows := make([]ScoreRow, len(scored))
	for i, s := range scored {
		rows[i] = ScoreRow{
			ModuleID:   s.ID,
			Title:      s.Title,
			ECTS:       s.ECTS,
			EQFLevel:   int32(s.EQFLevel),
			TopicScore: s.TopicScore,
			RoleScore:  s.RoleScore,
			TotalScore: s.TotalScore,
		}
	}
	return rows
}

// ConvertSelectionResult converts a SelectionResult into parquet rows.
func ConvertSelectionResult(result schema.SelectionResult) []SelectionRow {
	rows := make([]SelectionRow, len(result.Modules))
	for i, m := range result.Modules {
		row := SelectionRow{
			ModuleID:      m.ID,
			Title:         m.Title,
			ECTS:          m.ECTS,
			EQFLevel:      int32(m.EQFLevel),
			Topics:        strings.Join(m.Topics, "|"),
			SelectionMode: string(result.Metadata.SelectionMode),
			TargetECTS:    result.Metadata.TargetECTS,
		}
		if m.ThematicArea != "" {
			area := m.ThematicArea
			row.ThematicArea = &area
		}
		rows[i] = row
	}
	return rows
}

// ConvertRunRecords converts schema.RunRecord to RunRow for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []RunRow {
	rows := make([]RunRow, len(records))
	for i, record := range records {
		row := RunRow{
			RunID:          record.ID,
			RunAt:          record.RunAt,
			SelectionMode:  string(record.SelectionMode),
			TotalModules:   int32(record.TotalModules),
			TotalECTS:      record.TotalECTS,
			TargetECTS:     record.TargetECTS,
			ECTSEfficiency: record.ECTSEfficiencyPercent,
			TopicCoverage:  record.TopicCoveragePercent,
		}
		if record.Role != "" {
			role := record.Role
			row.Role = &role
		}
		if record.Topic != "" {
			topic := record.Topic
			row.Topic = &topic
		}
		rows[i] = row
	}
	return rows
}
