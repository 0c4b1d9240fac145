package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jmylchreest/colorscales/internal/colormap"
	"github.com/jmylchreest/colorscales/internal/colour"
	"golang.org/x/term"
)

const (
	// DefaultTerminalWidth is used when the output is not a terminal.
	DefaultTerminalWidth = 80

	minPreviewCells = 8
)

// TerminalWidth returns the column count of f if it is a terminal, and
// DefaultTerminalWidth otherwise.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd()) // #nosec G115 - file descriptors fit in int
	if !term.IsTerminal(fd) {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

// Preview writes one truecolor gradient line per name to w, each prefixed by
// the right-aligned name. width is the total line width in columns.
func Preview(w io.Writer, reg *colormap.Registry, names []string, width int) error {
	if err := reg.Validate(names); err != nil {
		return err
	}

	labelWidth := 0
	for _, name := range names {
		labelWidth = max(labelWidth, len(name))
	}
	cells := max(width-labelWidth-1, minPreviewCells)

	for _, name := range names {
		cm, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%*s %s\n", labelWidth, name, colour.GradientBlocks(cellColours(cm, cells))); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
	}
	return nil
}

// cellColours samples cm at the centre of each of n cells.
func cellColours(cm colormap.Colormap, n int) []colour.RGB {
	colours := make([]colour.RGB, n)
	for i := range colours {
		colours[i] = cm.At((float64(i) + 0.5) / float64(n))
	}
	return colours
}
