// Package main provides the Teller CLI entry point.
package main

import (
	"os"

	"github.com/teller-lang/teller/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
