package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rowexpand/internal/cli"
	"github.com/aretw0/rowexpand/internal/validator"
	"github.com/aretw0/rowexpand/pkg/adapters/file"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check the table definition for consistency",
	Long:  `Reports duplicate row or column keys, expanded keys that name no row and an out of range expand icon column.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Table is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	if !cmd.Flags().Changed("file") && len(args) > 0 {
		path = args[0]
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	path, err = cli.ResolveFile(path, cwd)
	if err != nil {
		return err
	}

	def, err := file.Load(path)
	if err != nil {
		return err
	}
	return validator.ValidateDefinition(def)
}
