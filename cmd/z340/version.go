package main

import (
	"fmt"

	"github.com/aretw0/z340"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of z340",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "z340 version %s\n", z340.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
