package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/colorscales/internal/colormap"
	"github.com/ulikunitz/xz"
)

// DefaultPath is the default CSV output file.
const DefaultPath = "matplotlib_colorscales.csv"

// xzExt marks an output path that is written xz-compressed.
const xzExt = ".xz"

// Exporter samples colour scales and writes them to a CSV file.
type Exporter struct {
	registry *colormap.Registry
	logger   hclog.Logger
	samples  int
}

// NewExporter creates an Exporter that resolves names with reg.
// A nil logger discards all output.
func NewExporter(reg *colormap.Registry, logger hclog.Logger) *Exporter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Exporter{
		registry: reg,
		logger:   logger.Named("export"),
		samples:  colormap.DefaultSamples,
	}
}

// Export builds the full table for names in memory and then writes it to
// path. Nothing is written if the table cannot be built.
func (e *Exporter) Export(path string, names []string) (*Table, error) {
	e.logger.Debug("building table", "colorscales", len(names), "samples", e.samples)

	table, err := BuildTable(e.registry, names, e.samples)
	if err != nil {
		return nil, fmt.Errorf("failed to build table: %w", err)
	}

	e.logger.Debug("writing csv", "path", path, "rows", table.Len())
	if err := writeFile(path, table); err != nil {
		return nil, err
	}

	e.logger.Info("exported colour scales", "path", path, "colorscales", len(names), "rows", table.Len())
	return table, nil
}

// writeFile writes t to path, xz-compressing when path ends in ".xz".
func writeFile(path string, t *Table) error {
	if path == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	writeErr := writeTo(f, path, t)
	closeErr := f.Close()

	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return nil
}

func writeTo(w io.Writer, path string, t *Table) error {
	if !strings.HasSuffix(strings.ToLower(path), xzExt) {
		return WriteCSV(w, t)
	}

	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if err := WriteCSV(xzw, t); err != nil {
		_ = xzw.Close()
		return err
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return nil
}
