package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/api-demo/internal/comparison"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Print the net/http vs resty comparison",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return newPrinter(cmd).PrintComparison(comparison.Rows())
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
