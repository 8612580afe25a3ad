// Command mutk is the compiler's thin front end. The pedigree-file parser,
// full subcommand surface, and build/version reporting are owned by an
// external dispatcher (spec.md §1 non-goals); this binary exists only so the
// core package has one runnable entry point.
package main

import (
	"fmt"
	"os"

	"github.com/mutk-dev/mutk/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
