// Package main is the entry point for the inventsync server.
package main

import (
	"os"

	"github.com/sunraincyq/inventsync-app/cmd/inventsync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
