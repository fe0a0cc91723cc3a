package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "catalog",
		Short: "Display the full catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, _, err := openLibrary(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return lib.DisplayCatalog()
		},
	})
}
