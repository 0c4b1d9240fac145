// colorscales - reference colour scale figure and CSV export
//
// colorscales renders a curated set of colour scales and exports their
// samples as sRGB and CIE LCH values.
package main

import (
	"os"

	"github.com/jmylchreest/colorscales/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
