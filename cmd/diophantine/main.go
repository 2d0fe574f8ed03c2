// Package main is the entry point for the diophantine CLI.
package main

import "github.com/katalvlaran/lindio/internal/cli"

func main() {
	cli.Execute()
}
