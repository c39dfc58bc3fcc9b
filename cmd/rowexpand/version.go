package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/rowexpand"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rowexpand",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rowexpand version %s\n", strings.TrimSpace(rowexpand.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
