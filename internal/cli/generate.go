package cli

import (
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the figure and export the CSV",
		Long: `Run the full pipeline on the colour scale catalog: render the strip
figure, then export the sampled RGB and LCH values to CSV.

Examples:
  # Write matplotlib_colorscales.png and matplotlib_colorscales.csv
  colorscales generate

  # Skip the figure file and preview in the terminal instead
  colorscales generate --figure "" --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if preview {
				if err := a.runPreview(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			if a.config.Figure != "" {
				if err := a.runRender(); err != nil {
					return err
				}
			} else {
				a.logger.Debug("figure disabled")
			}
			return a.runExport()
		},
	}

	bindOutputFlag(cmd.Flags(), &a.config)
	bindFigureFlag(cmd.Flags(), &a.config, "figure", "f")
	cmd.Flags().BoolVar(&preview, "preview", false, "print the colour scales to the terminal")
	return cmd
}
