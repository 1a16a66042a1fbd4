// ABOUTME: Now command printing the current instant
// ABOUTME: Honors the output timezone, UTC mode, and layout flags

package main

import (
	"github.com/spf13/cobra"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current date and time",
	Long:  "Print the current date and time in the output timezone, or UTC with --utc",
	RunE: func(cmd *cobra.Command, args []string) error {
		printInstant(whenClock.Now(), outputLayout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nowCmd)
}
