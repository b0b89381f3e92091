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

// runTimeFormat is the display format for run timestamps.
const runTimeFormat = "2006-01-02 15:04:05"

// WriteRuns outputs recorded selection runs, dispatching based on the output format configured.
func WriteRuns(runs []schema.RunRecord, cfg *contract.Config) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsCSV(w, runs, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeRunsParquet(runs, cfg)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsTable(runs, fmtFloat, intFmt, w)
		}, "Wrote table")
	}
}

// writeRunsTable generates and writes the human-readable table.
func writeRunsTable(runs []schema.RunRecord, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"ID", "Run At", "Role", "Topic", "Mode", "Modules", "ECTS", "Target", "Efficiency", "Coverage"}
	table.Header(headers)

	// 2. Configure alignment to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, r := range runs {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.RunAt.Format(runTimeFormat),
			r.Role,
			r.Topic,
			string(r.SelectionMode),
			fmt.Sprintf(intFmt, r.TotalModules),
			fmtFloat(r.TotalECTS),
			fmtFloat(r.TargetECTS),
			fmtFloat(r.ECTSEfficiencyPercent),
			fmtFloat(r.TopicCoveragePercent),
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

	if _, err := fmt.Fprintf(writer, "Showing %d recorded runs, most recent first\n", len(runs)); err != nil {
		return err
	}
	return nil
}

// writeRunsCSV writes the run history in CSV format.
func writeRunsCSV(w io.Writer, runs []schema.RunRecord, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"id",
		"run_at",
		"role",
		"topic",
		"selection_mode",
		"total_modules",
		"total_ects",
		"target_ects",
		"ects_efficiency",
		"topic_coverage",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range runs {
			rec := []string{
				strconv.FormatInt(r.ID, 10),
				r.RunAt.Format(time.RFC3339),
				r.Role,
				r.Topic,
				string(r.SelectionMode),
				fmt.Sprintf(intFmt, r.TotalModules),
				fmtFloat(r.TotalECTS),
				fmtFloat(r.TargetECTS),
				fmtFloat(r.ECTSEfficiencyPercent),
				fmtFloat(r.TopicCoveragePercent),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeRunsParquet exports the run history as a Parquet file.
func writeRunsParquet(runs []schema.RunRecord, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.ConvertRunRecords(runs)
	if err := parquet.WriteRunsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// WriteStatus prints status information about the catalogue store.
func WriteStatus(status schema.StoreStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Backend: %s\n", status.Backend); err != nil {
			return err
		}
		if status.Location != "" {
			if _, err := fmt.Fprintf(w, "Location: %s\n", status.Location); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Modules: %d\n", status.ModuleCount); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Runs: %d\n", status.RunCount); err != nil {
			return err
		}
		if status.SizeBytes > 0 {
			if _, err := fmt.Fprintf(w, "Size: %d bytes\n", status.SizeBytes); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote status")
}
