package colormap

import (
	"fmt"
	"sort"

	"github.com/jmylchreest/colorscales/internal/colour"
)

// Anchor is a control point of one colour channel.
// Below is the value approached from the left of X, Above the value leaving
// X to the right; they differ only at a discontinuity.
type Anchor struct {
	X     float64
	Below float64
	Above float64
}

// SegmentData holds the anchors of each channel. Every channel must start at
// X=0, end at X=1 and have non-decreasing X.
type SegmentData struct {
	Red   []Anchor
	Green []Anchor
	Blue  []Anchor
}

// Segmented is a colormap defined by piecewise-linear channels.
type Segmented struct {
	name string
	data SegmentData
}

// NewSegmented creates a segmented colormap, validating the anchor lists.
func NewSegmented(name string, data SegmentData) (*Segmented, error) {
	channels := []struct {
		label   string
		anchors []Anchor
	}{
		{"red", data.Red},
		{"green", data.Green},
		{"blue", data.Blue},
	}
	for _, ch := range channels {
		if err := validateAnchors(ch.anchors); err != nil {
			return nil, fmt.Errorf("colormap %s: %s channel: %w", name, ch.label, err)
		}
	}
	return &Segmented{name: name, data: data}, nil
}

// MustSegmented is like NewSegmented but panics on invalid data.
// It is meant for the built-in colormap tables.
func MustSegmented(name string, data SegmentData) *Segmented {
	s, err := NewSegmented(name, data)
	if err != nil {
		panic(err)
	}
	return s
}

// FromList creates a segmented colormap whose colours are evenly spaced
// anchors over [0, 1]. At least two colours are required.
func FromList(name string, colours ...colour.RGB) (*Segmented, error) {
	if len(colours) < 2 {
		return nil, fmt.Errorf("colormap %s: at least 2 colours required, got %d", name, len(colours))
	}

	n := len(colours)
	data := SegmentData{
		Red:   make([]Anchor, n),
		Green: make([]Anchor, n),
		Blue:  make([]Anchor, n),
	}
	for i, c := range colours {
		x := float64(i) / float64(n-1)
		data.Red[i] = Anchor{X: x, Below: c.R, Above: c.R}
		data.Green[i] = Anchor{X: x, Below: c.G, Above: c.G}
		data.Blue[i] = Anchor{X: x, Below: c.B, Above: c.B}
	}
	return NewSegmented(name, data)
}

// MustFromList is like FromList but panics on invalid input.
func MustFromList(name string, colours ...colour.RGB) *Segmented {
	s, err := FromList(name, colours...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the colormap name.
func (s *Segmented) Name() string {
	return s.name
}

// Kind returns KindSegmented.
func (s *Segmented) Kind() Kind {
	return KindSegmented
}

// At returns the colour at position t.
func (s *Segmented) At(t float64) colour.RGB {
	t = clip(t)
	return colour.RGB{
		R: clip(evalChannel(s.data.Red, t)),
		G: clip(evalChannel(s.data.Green, t)),
		B: clip(evalChannel(s.data.Blue, t)),
	}
}

// evalChannel interpolates a channel at x in [0, 1]. A point sitting exactly
// on an anchor takes the anchor's Below value, except at x=0.
func evalChannel(anchors []Anchor, x float64) float64 {
	i := sort.Search(len(anchors), func(i int) bool { return anchors[i].X >= x })
	if i == 0 {
		return anchors[0].Above
	}
	if i == len(anchors) {
		return anchors[len(anchors)-1].Below
	}

	lo, hi := anchors[i-1], anchors[i]
	f := (x - lo.X) / (hi.X - lo.X)
	return lo.Above + f*(hi.Below-lo.Above)
}

func validateAnchors(anchors []Anchor) error {
	if len(anchors) < 2 {
		return fmt.Errorf("at least 2 anchors required, got %d", len(anchors))
	}
	if anchors[0].X != 0 {
		return fmt.Errorf("first anchor must be at x=0, got %g", anchors[0].X)
	}
	if last := anchors[len(anchors)-1].X; last != 1 {
		return fmt.Errorf("last anchor must be at x=1, got %g", last)
	}
	for i := 1; i < len(anchors); i++ {
		if anchors[i].X < anchors[i-1].X {
			return fmt.Errorf("anchors must be sorted by x: %g follows %g", anchors[i].X, anchors[i-1].X)
		}
	}
	return nil
}
