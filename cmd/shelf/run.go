package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var runStats bool

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&runStats, "stats", false, "Print statistics after the batch")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [commands-file]",
		Short: "Load the library and process an operations file",
		Long: `The run command loads publications and clients, then executes every
line of the operations file. Failed operations are reported and the batch
continues.

Example:
  shelf run
  shelf run data4commands.txt --stats
  shelf run ops.txt --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommands(cmd, args)
		},
	}
}

func runCommands(cmd *cobra.Command, args []string) error {
	// With --json the operation output moves to stderr and stdout carries
	// only the summary.
	out := cmd.OutOrStdout()
	if jsonOut {
		out = cmd.ErrOrStderr()
	}

	lib, cfg, err := openLibrary(cmd, out)
	if err != nil {
		return err
	}

	path := cfg.CommandsFile
	if len(args) == 1 {
		path = args[0]
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open command file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(out, "\nProcessing commands from: %s\n", path)
	fmt.Fprintf(out, "==========================================\n")

	sum, err := lib.ProcessCommands(file)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), sum)
	}

	printSummary(out, sum.Processed, sum.Succeeded)
	if runStats {
		return lib.DisplayStatistics()
	}
	return nil
}

func printSummary(w io.Writer, processed, succeeded int) {
	fmt.Fprintf(w, "\n%d of %d commands completed successfully.\n", succeeded, processed)
}
