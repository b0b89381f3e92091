package cmd

import (
	"github.com/dietmarja/curricula/core"
	"github.com/dietmarja/curricula/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd ranks catalogue modules without selecting a curriculum.
var scoreCmd = &cobra.Command{
	Use:   "score [catalogue-path]",
	Short: "Rank catalogue modules by topic and role relevance.",
	Long: `Score every module in the catalogue against a topic and role, then print
the ranking. Useful for inspecting the catalogue before running a selection.

Topic relevance (0-100) rewards keyword matches in titles, descriptions,
topic lists, and keyword lists, with a boost for measurement-related terms.
Role relevance comes from the per-role tables maintained by catalogue authors.

Examples:
  # Rank modules for a data analyst
  curricula score catalogue.json --role DAN

  # Check which modules cover carbon accounting
  curricula score catalogue.json --topic "Carbon Footprint Measurement" --limit 10

  # Export the full ranking
  curricula score catalogue.json --output json --output-file scores.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run scoring", err)
		}
	},
}
