// Command almanac finds the lowest location reachable from the seeds of an
// almanac file.
//
//	almanac points input.txt   # every seed number is one value
//	almanac ranges input.txt   # seed numbers are (start, length) pairs
//	almanac check  input.txt   # parse and report stage diagnostics
package main

import (
	"os"

	"github.com/katalvlaran/rangemap/cmd/almanac/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
