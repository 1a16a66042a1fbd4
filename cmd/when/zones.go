// ABOUTME: Zones command listing IANA timezone names
// ABOUTME: Supports a curated common subset and substring filtering

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/when"
)

var zonesCmd = &cobra.Command{
	Use:   "zones [FILTER]",
	Short: "List timezone names",
	Long:  "List available IANA timezone names, optionally filtered by a case-insensitive substring",
	Example: `  when zones
  when zones --common
  when zones america`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		common, _ := cmd.Flags().GetBool("common")

		var names []string
		if common {
			names = when.CommonTimezones()
		} else {
			names = when.AllTimezones()
		}

		if len(args) == 1 {
			needle := strings.ToLower(args[0])
			filtered := names[:0:0]
			for _, name := range names {
				if strings.Contains(strings.ToLower(name), needle) {
					filtered = append(filtered, name)
				}
			}
			names = filtered
		}

		if len(names) == 0 {
			fmt.Println("No matching zones")
			return nil
		}

		faint := color.New(color.Faint).SprintFunc()
		for _, name := range names {
			// Faint region prefix, plain city.
			if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
				fmt.Printf("%s%s\n", faint(name[:idx+1]), name[idx+1:])
			} else {
				fmt.Println(name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)

	zonesCmd.Flags().Bool("common", false, "list only widely used zones")
}
