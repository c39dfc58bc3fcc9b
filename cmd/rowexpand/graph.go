package main

import (
	"fmt"

	"github.com/aretw0/rowexpand/internal/presentation/graph"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the row tree visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the row tree, including detail rows of expanded parents.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		state, _ := cmd.Flags().GetBool("state")

		table, _ := loadTable(cmd, newLogger(cmd, ""))
		defer table.Close()

		var overlay *graph.Overlay
		if state {
			overlay = &graph.Overlay{Expanded: true, Hidden: true}
		}
		fmt.Print(graph.GenerateMermaid(table.View(domain.FixedNone), overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("state", false, "Style expanded and hidden rows")
}
