package cli

import (
	"fmt"

	"github.com/jmylchreest/colorscales/internal/colormap"
	"github.com/jmylchreest/colorscales/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the colour scale catalog to CSV",
		Long: `Sample every colour scale of the catalog at 256 evenly spaced points,
convert each sample from sRGB to CIE LCH with a D65 white point and write
the result as CSV with the header:

  colorscale,index,R,G,B,L,C,H

The table is built in memory first; nothing is written if any colour scale
cannot be resolved.

Examples:
  # Write matplotlib_colorscales.csv in the current directory
  colorscales export

  # Write a compressed export
  colorscales export -o scales.csv.xz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport()
		},
	}

	bindOutputFlag(cmd.Flags(), &a.config)
	return cmd
}

// runExport writes the catalog CSV to the configured output path.
func (a *app) runExport() error {
	exporter := export.NewExporter(a.registry, a.logger)
	if _, err := exporter.Export(a.config.Output, colormap.Catalog); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}
