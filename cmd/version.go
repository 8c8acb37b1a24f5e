package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/resume-analyzer/internal/lexicon"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the skill lexicon version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s (lexicon %s)\n", app, version, lexicon.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
