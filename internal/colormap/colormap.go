// Package colormap provides the colour scales exported by colorscales: the
// colormap types, their built-in definitions and a registry to look them up
// by name.
package colormap

import (
	"errors"
	"math"

	"github.com/jmylchreest/colorscales/internal/colour"
)

// ErrUnknownColormap is returned when a name is not present in a Registry.
var ErrUnknownColormap = errors.New("unknown colormap")

// Colormap maps a normalised value in [0, 1] onto an sRGB colour.
type Colormap interface {
	// Name returns the registry name of the colormap.
	Name() string

	// Kind describes how the colormap is defined.
	Kind() Kind

	// At returns the colour at position t. Values outside [0, 1] are clipped.
	At(t float64) colour.RGB
}

// Kind represents the way a colormap is defined.
type Kind string

const (
	// KindSegmented interpolates linearly between per-channel anchor points.
	KindSegmented Kind = "segmented"

	// KindFunctional evaluates a closed-form function per channel.
	KindFunctional Kind = "functional"

	// KindListed picks entries from a fixed lookup table.
	KindListed Kind = "listed"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// clip limits v to [0, 1]. NaN maps to 0.
func clip(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
