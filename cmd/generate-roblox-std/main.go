// Package main provides the generate-roblox-std CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/robloxstd/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
