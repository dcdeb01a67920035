// SPDX-License-Identifier: MIT

// Package main is the entrypoint for the utmatrix CLI.
package main

import (
	"os"

	"github.com/katalvlaran/utmatrix/internal/cli"
)

func main() {
	os.Exit(cli.New(os.Stdout, os.Stderr).Execute(os.Args[1:]))
}
