package cli

import (
	"os"

	"github.com/jmylchreest/colorscales/internal/export"
	"github.com/spf13/pflag"
)

// Environment variables that override the default output paths.
const (
	envOutput = "COLORSCALES_OUTPUT"
	envFigure = "COLORSCALES_FIGURE"
)

// DefaultFigurePath is the default figure output file.
const DefaultFigurePath = "matplotlib_colorscales.png"

// Config holds output settings shared by the commands.
type Config struct {
	// Output is the CSV output path.
	Output string
	// Figure is the figure output path. Empty disables the figure file.
	Figure string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output: export.DefaultPath,
		Figure: DefaultFigurePath,
	}
}

// WithEnv applies COLORSCALES_OUTPUT and COLORSCALES_FIGURE when they are
// set. A set but empty COLORSCALES_FIGURE disables the figure file.
func (c Config) WithEnv(lookup func(string) (string, bool)) Config {
	if v, ok := lookup(envOutput); ok && v != "" {
		c.Output = v
	}
	if v, ok := lookup(envFigure); ok {
		c.Figure = v
	}
	return c
}

// LoadConfig returns the defaults overridden by the process environment.
func LoadConfig() Config {
	return DefaultConfig().WithEnv(os.LookupEnv)
}

// bindOutputFlag registers the CSV output flag.
func bindOutputFlag(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "CSV output file; a .xz suffix compresses it (env "+envOutput+")")
}

// bindFigureFlag registers the figure output flag under the given name.
func bindFigureFlag(fs *pflag.FlagSet, cfg *Config, name, shorthand string) {
	fs.StringVarP(&cfg.Figure, name, shorthand, cfg.Figure, "figure output file: .png, .jpg, .tiff, .svg or .pdf (env "+envFigure+")")
}
