// ABOUTME: Past command computing a datetime behind now
// ABOUTME: Mirror of future with every offset component negated

package main

import (
	"github.com/spf13/cobra"

	"github.com/harper/when/internal/calendar"
)

var pastCmd = &cobra.Command{
	Use:   "past",
	Short: "Print a date and time in the past",
	Long: `Print the current time shifted back by a calendar offset.

Month and year arithmetic never clamps: one month before Mar 31 carries
through February and lands in early March.`,
	Example: `  when past --years 1
  when past --months 1
  when past --weeks 2 --hours 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelative(cmd, calendar.Past)
	},
}

func init() {
	rootCmd.AddCommand(pastCmd)
	addOffsetFlags(pastCmd)
}
