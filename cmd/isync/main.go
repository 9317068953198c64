// Package main is the entry point for the isync CLI client.
package main

import (
	"github.com/sunraincyq/inventsync-app/cmd/isync/cmd"
)

func main() {
	cmd.Execute()
}
