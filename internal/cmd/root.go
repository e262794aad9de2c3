// Package cmd implements the emopick command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "emopick",
	Short: "an emoji picker for the terminal",
	Long: `emopick - browse emoji by category, search, and pick one
  - pick       open the picker and print the chosen emoji
  - categories list categories and counts
  - recents    show recently picked emoji`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(recentsCmd)
	rootCmd.AddCommand(versionCmd)
}
