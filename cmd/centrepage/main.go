// Package main is the entry point for the centrepage CLI.
package main

import (
	"os"

	"github.com/mediavision/centrepage/cmd/centrepage/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
