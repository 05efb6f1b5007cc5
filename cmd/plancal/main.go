// Package main renders projected gymplan month calendars in the terminal.
// It runs the schedule generator locally and needs no database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
