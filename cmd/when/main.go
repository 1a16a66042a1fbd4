// ABOUTME: Entry point for when CLI
// ABOUTME: Initializes and executes root command

package main

import (
	"fmt"
	"os"

	// Embed the IANA database so zone lookups work on hosts without
	// a zoneinfo directory.
	_ "time/tzdata"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
