package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show library and client table statistics",
		Long: `The stats command loads the library and prints its totals together
with client hash table and catalog tree diagnostics.

Example:
  shelf stats
  shelf stats --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if jsonOut {
				out = cmd.ErrOrStderr()
			}
			lib, _, err := openLibrary(cmd, out)
			if err != nil {
				return err
			}
			if jsonOut {
				st, err := lib.Stats()
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), st)
			}
			return lib.DisplayStatistics()
		},
	}
}
