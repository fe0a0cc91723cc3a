package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "clients",
		Short: "List registered clients in hash table order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, _, err := openLibrary(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return lib.DisplayClients()
		},
	})
}
