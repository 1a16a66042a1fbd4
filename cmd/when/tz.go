// ABOUTME: Tz command printing the system timezone
// ABOUTME: Resolves the zone name from TZ, /etc/timezone, or /etc/localtime

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/when"
)

var tzCmd = &cobra.Command{
	Use:   "tz",
	Short: "Print the system timezone",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(when.Timezone())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tzCmd)
}
