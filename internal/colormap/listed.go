package colormap

import (
	"fmt"

	"github.com/jmylchreest/colorscales/internal/colour"
)

// Listed is a colormap backed by a lookup table. Position t selects entry
// floor(t*N), with t=1 mapping to the last entry; there is no interpolation.
type Listed struct {
	name    string
	colours []colour.RGB
}

// NewListed creates a listed colormap from its lookup table.
func NewListed(name string, colours []colour.RGB) (*Listed, error) {
	if len(colours) == 0 {
		return nil, fmt.Errorf("colormap %s: lookup table is empty", name)
	}
	for i, c := range colours {
		if !c.Valid() {
			return nil, fmt.Errorf("colormap %s: entry %d out of range: %s", name, i, c)
		}
	}
	return &Listed{name: name, colours: colours}, nil
}

// MustListed is like NewListed but panics on an invalid table.
func MustListed(name string, colours []colour.RGB) *Listed {
	l, err := NewListed(name, colours)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the colormap name.
func (l *Listed) Name() string {
	return l.name
}

// Kind returns KindListed.
func (l *Listed) Kind() Kind {
	return KindListed
}

// Len returns the number of table entries.
func (l *Listed) Len() int {
	return len(l.colours)
}

// At returns the table entry covering position t.
func (l *Listed) At(t float64) colour.RGB {
	n := len(l.colours)
	i := int(clip(t) * float64(n))
	if i >= n {
		i = n - 1
	}
	return l.colours[i]
}

// tableColours converts a float table into colours.
func tableColours(rows [][3]float64) []colour.RGB {
	colours := make([]colour.RGB, len(rows))
	for i, r := range rows {
		colours[i] = colour.RGB{R: r[0], G: r[1], B: r[2]}
	}
	return colours
}
