package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dietmarja/curricula/internal/contract"
	"github.com/dietmarja/curricula/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteMatches outputs requirement match results, dispatching based on the output format configured.
func WriteMatches(matches []schema.RequirementMatch, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, matches)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatchesCSV(w, matches, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for requirement matches")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatchesTable(matches, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeMatchesTable generates and writes the human-readable table.
func writeMatchesTable(matches []schema.RequirementMatch, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Competency", "Requirement", "Matched", "ID", "Title", "ECTS", "EQF"}
	table.Header(headers)

	// 2. Configure alignment to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	titleWidth := getMaxTableTitleWidth(cfg)
	matched := 0
	var data [][]string
	for _, m := range matches {
		row := []string{
			contract.TruncateText(m.Competency, titleWidth),
			contract.TruncateText(m.Requirement, titleWidth),
			formatMatched(m.Matched),
			m.ModuleID,
			contract.TruncateText(m.ModuleTitle, titleWidth),
			formatMatchedECTS(m, fmtFloat),
			formatMatchedEQF(m, intFmt),
		}
		data = append(data, row)
		if m.Matched {
			matched++
		}
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Matched %d of %d requirements\n", matched, len(matches)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Matching completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeMatchesCSV writes the match results in CSV format.
func writeMatchesCSV(w io.Writer, matches []schema.RequirementMatch, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"competency",
		"requirement",
		"matched",
		"module_id",
		"module_title",
		"ects",
		"eqf_level",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, m := range matches {
			rec := []string{
				m.Competency,
				m.Requirement,
				strconv.FormatBool(m.Matched),
				m.ModuleID,
				m.ModuleTitle,
				formatMatchedECTS(m, fmtFloat),
				formatMatchedEQF(m, intFmt),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// formatMatched renders the matched flag for table cells.
func formatMatched(matched bool) string {
	if matched {
		return "yes"
	}
	return "no"
}

// formatMatchedECTS renders the ECTS cell, empty for unmatched requirements.
func formatMatchedECTS(m schema.RequirementMatch, fmtFloat func(float64) string) string {
	if !m.Matched {
		return ""
	}
	return fmtFloat(m.ECTS)
}

// formatMatchedEQF renders the EQF cell, empty for unmatched requirements.
func formatMatchedEQF(m schema.RequirementMatch, intFmt string) string {
	if !m.Matched {
		return ""
	}
	return fmt.Sprintf(intFmt, m.EQFLevel)
}
