// Package export builds the colour scale sample table and writes it as CSV.
package export

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/colorscales/internal/colormap"
	"github.com/jmylchreest/colorscales/internal/colour"
)

// Header is the CSV header row.
var Header = []string{"colorscale", "index", "R", "G", "B", "L", "C", "H"}

// Row is one sample of one colour scale.
type Row struct {
	Colorscale string
	// Index is 1-based.
	Index      int
	RGB        colour.RGB
	LCH        colour.LCH
}

// Record returns the row as CSV fields in Header order.
func (r Row) Record() []string {
	return []string{
		r.Colorscale,
		strconv.Itoa(r.Index),
		FormatFloat(r.RGB.R),
		FormatFloat(r.RGB.G),
		FormatFloat(r.RGB.B),
		FormatFloat(r.LCH.L),
		FormatFloat(r.LCH.C),
		FormatFloat(r.LCH.H),
	}
}

// Table is the ordered set of rows for a list of colour scales.
// Rows are grouped by colour scale in input order, then by index.
type Table struct {
	Rows    []Row
	Samples int
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Scale returns the rows of the named colour scale, in index order.
// If the name appears more than once, only the first occurrence is returned.
func (t *Table) Scale(name string) []Row {
	for i, row := range t.Rows {
		if row.Colorscale == name {
			end := min(i+t.Samples, len(t.Rows))
			return t.Rows[i:end]
		}
	}
	return nil
}

// BuildTable samples every named colour scale and converts the samples to
// LCH. Any unknown name or conversion failure aborts the build.
func BuildTable(reg *colormap.Registry, names []string, samples int) (*Table, error) {
	if err := reg.Validate(names); err != nil {
		return nil, err
	}

	table := &Table{
		Rows:    make([]Row, 0, len(names)*samples),
		Samples: samples,
	}
	for _, name := range names {
		cm, err := reg.Lookup(name)
		if err != nil {
			return nil, err
		}

		colours, err := colormap.Sample(cm, samples)
		if err != nil {
			return nil, fmt.Errorf("failed to sample %s: %w", name, err)
		}

		for i, rgb := range colours {
			lch, err := colour.ToLCH(rgb)
			if err != nil {
				return nil, fmt.Errorf("failed to convert %s sample %d: %w", name, i+1, err)
			}
			table.Rows = append(table.Rows, Row{
				Colorscale: name,
				Index:      i + 1,
				RGB:        rgb,
				LCH:        lch,
			})
		}
	}

	return table, nil
}
