package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/internal/cli"
	"github.com/aretw0/rowexpand/internal/logging"
	"github.com/aretw0/rowexpand/pkg/adapters/file"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rowexpand",
	Short: "rowexpand renders tree tables with expandable rows",
	Long: `rowexpand loads a table definition (YAML or JSON) and lets you expand and
collapse its rows from the terminal, over HTTP or through MCP tools.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "", "Table definition file (defaults to table.yaml in the current directory)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (disabled when empty)")
}

// newLogger builds the logger selected by --log-level.
func newLogger(cmd *cobra.Command, fallback string) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = fallback
	}
	if level == "" {
		return logging.NewNop()
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return logging.New(lvl)
}

// loadTable loads the table selected by --file or exits.
func loadTable(cmd *cobra.Command, logger *slog.Logger, extra ...rowexpand.Option) (*rowexpand.Table, *file.Definition) {
	path, _ := cmd.Flags().GetString("file")
	if !cmd.Flags().Changed("file") && len(cmd.Flags().Args()) > 0 {
		path = cmd.Flags().Arg(0)
	}

	cwd, _ := os.Getwd()
	path, err := cli.ResolveFile(path, cwd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	table, def, err := cli.LoadTable(path, logger, extra...)
	if err != nil {
		fmt.Printf("Error loading table: %v\n", err)
		os.Exit(1)
	}
	return table, def
}
