package cmd

import (
	"sort"

	"github.com/dietmarja/curricula/schema"
	"github.com/spf13/cobra"
)

// rolesCmd lists the recognized professional role codes.
var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the recognized professional role codes.",
	Long: `Print the role codes accepted by --role, with their display names.

Role relevance tables in the catalogue are keyed by these codes. Unknown
codes are accepted but score zero role relevance.`,
	Run: func(cmd *cobra.Command, _ []string) {
		codes := make([]string, 0, len(schema.Roles))
		for code := range schema.Roles {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			cmd.Printf("%-5s %s\n", code, schema.Roles[code])
		}
	},
}
