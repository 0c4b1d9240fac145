package colormap

import "github.com/jmylchreest/colorscales/internal/colour"

// ChannelFunc computes one colour channel from a position in [0, 1].
type ChannelFunc func(x float64) float64

// Functional is a colormap whose channels are closed-form functions.
// Results are clipped to [0, 1].
type Functional struct {
	name  string
	red   ChannelFunc
	green ChannelFunc
	blue  ChannelFunc
}

// NewFunctional creates a functional colormap.
func NewFunctional(name string, red, green, blue ChannelFunc) *Functional {
	return &Functional{name: name, red: red, green: green, blue: blue}
}

// Name returns the colormap name.
func (f *Functional) Name() string {
	return f.name
}

// Kind returns KindFunctional.
func (f *Functional) Kind() Kind {
	return KindFunctional
}

// At returns the colour at position t.
func (f *Functional) At(t float64) colour.RGB {
	t = clip(t)
	return colour.RGB{
		R: clip(f.red(t)),
		G: clip(f.green(t)),
		B: clip(f.blue(t)),
	}
}

// constant returns a ChannelFunc that ignores its input.
func constant(v float64) ChannelFunc {
	return func(float64) float64 { return v }
}

// linear returns a ChannelFunc computing a*x + b.
func linear(a, b float64) ChannelFunc {
	return func(x float64) float64 { return a*x + b }
}
