package main

import (
	"fmt"

	"github.com/philipparndt/govec/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "govec %s (commit %s, built %s)\n",
			version.GetFullVersion(), version.GitCommit, version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
