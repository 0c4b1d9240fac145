package colormap

import (
	"fmt"

	"github.com/jmylchreest/colorscales/internal/colour"
)

// DefaultSamples is the number of samples taken from each colormap.
const DefaultSamples = 256

// Linspace returns n evenly spaced values over [0, 1], both ends included.
func Linspace(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i) / float64(n-1)
	}
	// Guard against rounding so the last value is exactly 1.
	values[n-1] = 1
	return values
}

// Sample evaluates cm at n evenly spaced positions over [0, 1].
func Sample(cm Colormap, n int) ([]colour.RGB, error) {
	if n < 2 {
		return nil, fmt.Errorf("sample count must be at least 2, got %d", n)
	}
	positions := Linspace(n)
	colours := make([]colour.RGB, n)
	for i, t := range positions {
		colours[i] = cm.At(t)
	}
	return colours, nil
}
