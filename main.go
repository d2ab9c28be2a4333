// Package main is the entry point for mazeworks.
package main

import (
	"os"

	"mazeworks/pkg/cli"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
