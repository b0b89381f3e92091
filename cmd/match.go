package cmd

import (
	"fmt"

	"github.com/dietmarja/curricula/core"
	"github.com/dietmarja/curricula/internal/contract"
	"github.com/spf13/cobra"
)

// matchCmd resolves competency requirements against the catalogue.
var matchCmd = &cobra.Command{
	Use:   "match [catalogue-path]",
	Short: "Match competency profile requirements to catalogue modules.",
	Long: `Resolve each requirement in a competency profile to at most one catalogue
module, without assembling a full curriculum. Shows which requirements the
catalogue can satisfy at the requested EQF level and which stay uncovered.

A module is assigned to only one requirement. EQF compatibility allows a
difference of one level in either direction.

Examples:
  # Check profile coverage at EQF level 6
  curricula match catalogue.json --profile profile.json

  # Same check at a higher level
  curricula match catalogue.json --profile profile.json --eqf 7`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		if cfg.ProfilePath == "" {
			return fmt.Errorf("match requires --profile")
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMatch(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run matching", err)
		}
	},
}
