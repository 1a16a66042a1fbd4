// ABOUTME: Day-anchor commands: today, tomorrow, and yesterday
// ABOUTME: Prints midnight-anchored dates in the output timezone

package main

import (
	"github.com/spf13/cobra"

	"github.com/harper/when"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's date",
	RunE: func(cmd *cobra.Command, args []string) error {
		printInstant(whenClock.Today(), layoutOrDefault(when.FormatDate))
		return nil
	},
}

var tomorrowCmd = &cobra.Command{
	Use:   "tomorrow",
	Short: "Print tomorrow's date",
	RunE: func(cmd *cobra.Command, args []string) error {
		printInstant(whenClock.Tomorrow(), layoutOrDefault(when.FormatDate))
		return nil
	},
}

var yesterdayCmd = &cobra.Command{
	Use:   "yesterday",
	Short: "Print yesterday's date",
	RunE: func(cmd *cobra.Command, args []string) error {
		printInstant(whenClock.Yesterday(), layoutOrDefault(when.FormatDate))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(tomorrowCmd)
	rootCmd.AddCommand(yesterdayCmd)
}
