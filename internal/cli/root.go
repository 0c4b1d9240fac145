// Package cli provides the command-line interface for colorscales.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/colorscales/internal/colormap"
	"github.com/jmylchreest/colorscales/internal/version"
	"github.com/spf13/cobra"
)

// app holds the state shared by the commands of one root command.
type app struct {
	verbose  bool
	quiet    bool
	logger   hclog.Logger
	registry *colormap.Registry
	config   Config
}

// NewRootCmd builds the colorscales command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		registry: colormap.Default(),
		config:   LoadConfig(),
	}

	rootCmd := &cobra.Command{
		Use:   "colorscales",
		Short: "Render and export reference colour scales",
		Long: `colorscales renders a reference figure of a curated set of colour scales
and exports every scale, sampled at 256 points, as RGB and CIE LCH (D65)
values in a CSV file.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose && a.quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newLogger configures the logger based on the verbose and quiet flags.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorscales",
		Output: out,
		Level:  level,
	})
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
