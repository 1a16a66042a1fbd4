// ABOUTME: Root Cobra command and global flags
// ABOUTME: Sets up CLI structure and resolves the output timezone and layout

package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/when/internal/clock"
	"github.com/harper/when/internal/config"
	"github.com/harper/when/internal/tzdb"
)

var (
	tzFlag     string
	utcFlag    bool
	formatFlag string

	cfg          *config.Config
	whenClock    *clock.Clock
	outputLoc    *time.Location
	outputLayout string
)

var rootCmd = &cobra.Command{
	Use:   "when",
	Short: "Friendly dates and times",
	Long: `
██╗    ██╗██╗  ██╗███████╗███╗   ██╗
██║    ██║██║  ██║██╔════╝████╗  ██║
██║ █╗ ██║███████║█████╗  ██╔██╗ ██║
██║███╗██║██╔══██║██╔══╝  ██║╚██╗██║
╚███╔███╔╝██║  ██║███████╗██║ ╚████║
 ╚══╝╚══╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═══╝

Friendly dates and times for humans and AI agents.

Print the current time, step to nearby days, shift by calendar
offsets, and convert between timezones.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		whenClock = clock.New()
		if utcFlag || cfg.UTC {
			whenClock.SetUTC()
			outputLoc = time.UTC
		} else {
			name := tzFlag
			if name == "" {
				name = cfg.GetTimezone()
			}
			outputLoc, err = tzdb.Lookup(name)
			if err != nil {
				return err
			}
			// Anchor the clock in the output zone so today/tomorrow
			// fall on that zone's calendar day.
			loc := outputLoc
			whenClock.SetNowFunc(func() time.Time { return time.Now().In(loc) })
		}

		outputLayout = formatFlag
		if outputLayout == "" {
			outputLayout = cfg.GetFormat()
		}

		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tzFlag, "tz", "", "output timezone (default: config or system timezone)")
	rootCmd.PersistentFlags().BoolVar(&utcFlag, "utc", false, "use UTC regardless of timezone settings")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "output layout in Go reference-time notation (default: RFC 3339)")
}

// layoutOrDefault picks the output layout: the --format flag wins, then the
// config file, then the command's own default.
func layoutOrDefault(def string) string {
	if formatFlag != "" {
		return formatFlag
	}
	if cfg != nil && cfg.Format != "" {
		return cfg.Format
	}
	return def
}

// printInstant renders t in its own zone with the zone abbreviation in
// faint type. Callers convert to the output zone first.
func printInstant(t time.Time, layout string) {
	faint := color.New(color.Faint).SprintFunc()

	zone, _ := t.Zone()
	fmt.Printf("%s %s\n", t.Format(layout), faint(zone))
}
