package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dietmarja/curricula/internal/contract"
	"github.com/dietmarja/curricula/internal/parquet"
	"github.com/dietmarja/curricula/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSelection outputs a selection result, dispatching based on the output format configured.
func WriteSelection(result schema.SelectionResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSelectionCSV(w, result, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeSelectionParquet(result, cfg)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSelectionTable(result, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeSelectionTable generates and writes the human-readable table.
func writeSelectionTable(result schema.SelectionResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "ID", "Title", "ECTS", "EQF", "Area"}
	table.Header(headers)

	// 2. Configure alignment to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	titleWidth := getMaxTableTitleWidth(cfg)
	var data [][]string
	for i, m := range result.Modules {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			m.ID,
			contract.TruncateText(m.Title, titleWidth),
			fmtFloat(m.ECTS),
			fmt.Sprintf(intFmt, m.EQFLevel),
			m.ThematicArea,
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

	// Summary stats after the table
	meta := result.Metadata
	if _, err := fmt.Fprintf(writer, "Selected %d modules totalling %s ECTS (target %s, efficiency %s%%)\n",
		meta.TotalModules, fmtFloat(meta.TotalECTS), fmtFloat(meta.TargetECTS), fmtFloat(meta.ECTSEfficiencyPercent)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Mode: %s. Topic coverage: %s%% (%s). Thematic areas: %d\n",
		meta.SelectionMode, fmtFloat(meta.Coverage.TopicCoveragePercent),
		meta.Quality.TopicCoverage, meta.Quality.ThematicDiversity); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Selection completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeSelectionCSV writes the selection in CSV format.
func writeSelectionCSV(w io.Writer, result schema.SelectionResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"id",
		"title",
		"ects",
		"eqf_level",
		"thematic_area",
		"topics",
		"selection_mode",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, m := range result.Modules {
			rec := []string{
				strconv.Itoa(i + 1),
				m.ID,
				m.Title,
				fmtFloat(m.ECTS),
				fmt.Sprintf(intFmt, m.EQFLevel),
				m.ThematicArea,
				strings.Join(m.Topics, "|"),
				string(result.Metadata.SelectionMode),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSelectionParquet exports the selection as a Parquet file. Parquet is a
// binary format, so an explicit output file is required.
func writeSelectionParquet(result schema.SelectionResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.ConvertSelectionResult(result)
	if err := parquet.WriteSelectionParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
