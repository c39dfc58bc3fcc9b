package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rowexpand/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Browse a table interactively",
	Long: `Renders the table and reads commands from the terminal:
toggle, expand and collapse rows by key, list or replace the expanded keys.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			path = args[0]
		}
		logLevel, _ := cmd.Flags().GetString("log-level")
		watch, _ := cmd.Flags().GetBool("watch")
		quiet, _ := cmd.Flags().GetBool("quiet")

		err := cli.Execute(cli.RunOptions{
			File:     path,
			LogLevel: logLevel,
			Watch:    watch,
			Quiet:    quiet,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("watch", "w", false, "Reload the table when its file changes")
	runCmd.Flags().BoolP("quiet", "q", false, "Skip the banner and system messages")
}
