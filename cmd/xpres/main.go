// Package main provides the xpres command-line interpreter.
package main

import (
	"os"

	"github.com/leapstack-labs/xpres/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
