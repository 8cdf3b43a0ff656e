package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/evplot/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of evplot`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "evplot %s\n", version.Version)
	},
}
