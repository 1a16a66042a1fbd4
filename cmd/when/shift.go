// ABOUTME: Shift command converting a datetime between timezones
// ABOUTME: Parses the input, optionally rebinds its wall clock, and prints it in the target zone

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/when"
	"github.com/harper/when/internal/tzdb"
)

var shiftCmd = &cobra.Command{
	Use:   "shift TIME",
	Short: "Convert a datetime between timezones",
	Long: `Convert a datetime from one timezone to another.

With --from, the input's wall-clock fields are read in that zone; without
it, the zone carried by the input (or UTC for zoneless layouts) is used.
The target defaults to the output timezone.`,
	Example: `  when shift 2012-02-29T12:00:00Z --to Asia/Tokyo
  when shift "2012-02-29 12:00:00" --from America/New_York --to Europe/Paris`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromTZ, _ := cmd.Flags().GetString("from")
		toTZ, _ := cmd.Flags().GetString("to")

		value, err := parseInput(args[0])
		if err != nil {
			return err
		}

		if fromTZ != "" {
			from, err := tzdb.Lookup(fromTZ)
			if err != nil {
				return err
			}
			value = time.Date(value.Year(), value.Month(), value.Day(),
				value.Hour(), value.Minute(), value.Second(), value.Nanosecond(), from)
		}

		to := outputLoc
		if toTZ != "" {
			if to, err = tzdb.Lookup(toTZ); err != nil {
				return err
			}
		}

		printInstant(value.In(to), outputLayout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().String("from", "", "zone to read the input's wall clock in")
	shiftCmd.Flags().String("to", "", "zone to convert into (default: output timezone)")
}

// parseInput tries the supported layouts in order.
func parseInput(value string) (time.Time, error) {
	for _, layout := range when.ParseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: use RFC 3339, %q, or %q",
		value, when.FormatDateTime, when.FormatDate)
}
