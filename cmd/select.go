package cmd

import (
	"github.com/dietmarja/curricula/core"
	"github.com/dietmarja/curricula/internal/contract"
	"github.com/spf13/cobra"
)

// selectCmd assembles a curriculum from the catalogue.
var selectCmd = &cobra.Command{
	Use:   "select [catalogue-path]",
	Short: "Select a budget-constrained curriculum from the module catalogue.",
	Long: `Assemble a set of modules whose credit total approaches the ECTS target.

Two strategies are available:
- Competency-driven (with --profile): resolve each competency requirement to a
  module first, then fill the remaining budget with topic-relevant modules.
- Direct topic/role (without --profile): rank every module by a weighted blend
  of topic relevance, role relevance, and EQF proximity, then select greedily.

Budget shortfalls are reported in the result metadata, never as errors. The
catalogue path is optional once a snapshot has been stored.

Examples:
  # Select a 30 ECTS curriculum for a sustainability lead
  curricula select catalogue.json --role DSL --topic "Carbon Footprint Measurement"

  # Competency-driven selection from an educational profile
  curricula select catalogue.json --profile profile.json --ects 60

  # Reuse the stored catalogue snapshot
  curricula select --role DAN --eqf 7

  # Export the selection for tracking
  curricula select catalogue.json --output csv --output-file curriculum.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSelect(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run selection", err)
		}
	},
}
