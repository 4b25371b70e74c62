// Command histcmp renders data vs. background comparison plots for a set of
// physics control regions from pre-filled ROOT histogram files.
package main

import (
	"os"

	"github.com/hepplot/histcmp/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
