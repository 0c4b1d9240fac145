package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jmylchreest/colorscales/internal/colormap"
	"github.com/jmylchreest/colorscales/internal/render"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the colour scale catalog as a figure",
		Long: `Render one labelled gradient strip per colour scale of the catalog.

The figure format follows the output file extension (png, jpg, tiff, svg,
pdf). With --preview the strips are also printed to the terminal using
truecolor escape sequences; pass an empty --output to only preview.

Examples:
  # Render matplotlib_colorscales.png
  colorscales render

  # Render a vector figure
  colorscales render -o scales.svg

  # Preview in the terminal without writing a file
  colorscales render --preview -o ""`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if preview {
				if err := a.runPreview(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			if a.config.Figure == "" {
				if !preview {
					return fmt.Errorf("nothing to do: no output file and no --preview")
				}
				return nil
			}
			return a.runRender()
		},
	}

	bindFigureFlag(cmd.Flags(), &a.config, "output", "o")
	cmd.Flags().BoolVar(&preview, "preview", false, "print the colour scales to the terminal")
	return cmd
}

// runRender writes the catalog figure to the configured figure path.
func (a *app) runRender() error {
	renderer := render.NewRenderer(a.registry, a.logger)
	if err := renderer.RenderFile(a.config.Figure, colormap.Catalog); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// runPreview prints the catalog as truecolor strips to out.
func (a *app) runPreview(out io.Writer) error {
	width := render.DefaultTerminalWidth
	if f, ok := out.(*os.File); ok {
		width = render.TerminalWidth(f)
	}
	if err := render.Preview(out, a.registry, colormap.Catalog, width); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
