// ABOUTME: Ever command printing a random datetime
// ABOUTME: Picks an instant within a hundred years of today

package main

import (
	"github.com/spf13/cobra"

	"github.com/harper/when"
)

var everCmd = &cobra.Command{
	Use:   "ever",
	Short: "Print a random date and time",
	Long:  "Print a random datetime within one hundred years of today, either direction",
	RunE: func(cmd *cobra.Command, args []string) error {
		printInstant(when.Ever().In(outputLoc), outputLayout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(everCmd)
}
