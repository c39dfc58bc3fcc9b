package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/internal/presentation/tui"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Print the visible rows once",
	Long: `Prints the rows of a table section as text, or every row description
as JSON with --json. Use --expand to expand rows before rendering.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sideFlag, _ := cmd.Flags().GetString("side")
		expand, _ := cmd.Flags().GetString("expand")
		asJSON, _ := cmd.Flags().GetBool("json")

		side := domain.FixedSide(sideFlag)
		if side == "body" {
			side = domain.FixedNone
		}
		if side != domain.FixedNone && !side.IsFixed() {
			fmt.Printf("Error: invalid side %q\n", sideFlag)
			os.Exit(1)
		}

		var extra []rowexpand.Option
		if cmd.Flags().Changed("expand") {
			keys, err := domain.ParseKeySet(expand)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			extra = append(extra,
				rowexpand.WithoutExpandAllRows(),
				rowexpand.WithDefaultExpandedRowKeys(keys...),
			)
		}

		table, _ := loadTable(cmd, newLogger(cmd, ""), extra...)
		defer table.Close()

		if cmd.Flags().Changed("expand") && table.Controlled() {
			fmt.Fprintf(os.Stderr, "Warning: --expand ignored, the table declares expanded_row_keys %v\n", table.ExpandedRowKeys().Strings())
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(table.View(side)); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := table.Render(side, tui.NewRowWriter(os.Stdout)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("side", "body", "Table section: body, left or right")
	renderCmd.Flags().String("expand", "", "Rows to expand (comma separated or JSON array)")
	renderCmd.Flags().Bool("json", false, "Print every row description as JSON")
}
