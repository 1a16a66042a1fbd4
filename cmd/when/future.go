// ABOUTME: Future command computing a datetime ahead of now
// ABOUTME: Defines the shared offset flag set used by both future and past

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/when/internal/calendar"
)

var futureCmd = &cobra.Command{
	Use:   "future",
	Short: "Print a date and time in the future",
	Long: `Print the current time shifted forward by a calendar offset.

Month and year arithmetic never clamps: one month after Mar 31 is May 1,
and one year after Feb 29 is Mar 1.`,
	Example: `  when future --years 1
  when future --months 2 --days 3
  when future --hours 36`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelative(cmd, calendar.Future)
	},
}

func init() {
	rootCmd.AddCommand(futureCmd)
	addOffsetFlags(futureCmd)
}

// addOffsetFlags registers the calendar-unit flags shared by future and past.
func addOffsetFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("years", "y", 0, "years to shift")
	cmd.Flags().IntP("months", "m", 0, "months to shift")
	cmd.Flags().IntP("weeks", "w", 0, "weeks to shift")
	cmd.Flags().IntP("days", "d", 0, "days to shift")
	cmd.Flags().Int("hours", 0, "hours to shift")
	cmd.Flags().Int("minutes", 0, "minutes to shift")
	cmd.Flags().Int("seconds", 0, "seconds to shift")
}

// offsetFromFlags assembles an Offset from the registered flags.
func offsetFromFlags(cmd *cobra.Command) calendar.Offset {
	years, _ := cmd.Flags().GetInt("years")
	months, _ := cmd.Flags().GetInt("months")
	weeks, _ := cmd.Flags().GetInt("weeks")
	days, _ := cmd.Flags().GetInt("days")
	hours, _ := cmd.Flags().GetInt("hours")
	minutes, _ := cmd.Flags().GetInt("minutes")
	seconds, _ := cmd.Flags().GetInt("seconds")

	return calendar.Offset{
		Years:   years,
		Months:  months,
		Weeks:   weeks,
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}
}

func runRelative(cmd *cobra.Command, direction calendar.Direction) error {
	offset := offsetFromFlags(cmd)
	if offset.IsZero() {
		return fmt.Errorf("provide at least one offset flag (e.g. --days 3)")
	}

	printInstant(calendar.Shift(whenClock.Now(), offset, direction), outputLayout)
	return nil
}
