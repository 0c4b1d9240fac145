package colormap

import (
	"strings"

	"github.com/jmylchreest/colorscales/internal/colour"
)

// ReversedSuffix marks the reversed variant of a colormap name.
const ReversedSuffix = "_r"

// Reversed is a colormap traversed from 1 to 0.
type Reversed struct {
	base Colormap
}

// Reverse returns the reversed variant of cm. Reversing a reversed colormap
// returns the original.
func Reverse(cm Colormap) Colormap {
	if r, ok := cm.(*Reversed); ok {
		return r.base
	}
	return &Reversed{base: cm}
}

// Name returns the base name with the reversed suffix.
func (r *Reversed) Name() string {
	return r.base.Name() + ReversedSuffix
}

// Kind returns the kind of the underlying colormap.
func (r *Reversed) Kind() Kind {
	return r.base.Kind()
}

// At returns the base colour at 1-t.
func (r *Reversed) At(t float64) colour.RGB {
	return r.base.At(1 - clip(t))
}

// isReversedName reports whether name carries the reversed suffix and
// returns the base name.
func isReversedName(name string) (string, bool) {
	base, ok := strings.CutSuffix(name, ReversedSuffix)
	return base, ok && base != ""
}
