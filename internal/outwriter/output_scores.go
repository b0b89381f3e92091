package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dietmarja/curricula/internal/contract"
	"github.com/dietmarja/curricula/internal/parquet"
	"github.com/dietmarja/curricula/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteScores outputs ranked module scores, dispatching based on the output format configured.
func WriteScores(scored []schema.ScoredModule, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresJSON(w, scored)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresCSV(w, scored, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeScoresParquet(scored, cfg)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresTable(scored, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeScoresTable generates and writes the human-readable table.
func writeScoresTable(scored []schema.ScoredModule, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "ID", "Title", "ECTS", "EQF", "Topic", "Role", "Total", "Label"}
	table.Header(headers)

	// 2. Configure alignment to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	titleWidth := getMaxTableTitleWidth(cfg)
	var data [][]string
	for i, s := range scored {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			s.ID,
			contract.TruncateText(s.Title, titleWidth),
			fmtFloat(s.ECTS),
			fmt.Sprintf(intFmt, s.EQFLevel),
			fmtFloat(s.TopicScore),
			fmtFloat(s.RoleScore),
			fmtFloat(s.TotalScore),
			relevanceLabel(s.TotalScore, cfg.UseColors),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d modules for topic %q\n", len(scored), cfg.Topic); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeScoresCSV writes the scores in CSV format.
func writeScoresCSV(w io.Writer, scored []schema.ScoredModule, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"id",
		"title",
		"ects",
		"eqf_level",
		"topic_score",
		"role_score",
		"total_score",
		"label",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, s := range scored {
			rec := []string{
				strconv.Itoa(i + 1),
				s.ID,
				s.Title,
				fmtFloat(s.ECTS),
				fmt.Sprintf(intFmt, s.EQFLevel),
				fmtFloat(s.TopicScore),
				fmtFloat(s.RoleScore),
				fmtFloat(s.TotalScore),
				contract.GetPlainLabel(s.TotalScore),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeScoresJSON writes the scores in JSON format with rank and label added.
func writeScoresJSON(w io.Writer, scored []schema.ScoredModule) error {
	type JSONScoredModule struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ScoredModule
	}

	output := make([]JSONScoredModule, len(scored))
	for i, s := range scored {
		output[i] = JSONScoredModule{
			Rank:         i + 1,
			Label:        contract.GetPlainLabel(s.TotalScore),
			ScoredModule: s,
		}
	}

	return writeJSON(w, output)
}

// writeScoresParquet exports the scores as a Parquet file.
func writeScoresParquet(scored []schema.ScoredModule, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.ConvertScoredModules(scored)
	if err := parquet.WriteScoresParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
