package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// LCH is a colour in the CIE LCh(ab) space.
// L is lightness in [0, 100], C is chroma (>= 0) and H is hue in degrees [0, 360).
type LCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// String returns the colour as "lch(l, c, h)".
func (c LCH) String() string {
	return fmt.Sprintf("lch(%.2f, %.2f, %.2f)", c.L, c.C, c.H)
}

// WhitePointD65 is the CIE 1931 2° reference white for the D65 illuminant.
var WhitePointD65 = colorful.D65

// ToLCH converts an sRGB colour to CIE LCh(ab) relative to D65.
// Returns an error if any component lies outside [0, 1].
func ToLCH(c RGB) (LCH, error) {
	return ToLCHWhiteRef(c, WhitePointD65)
}

// ToLCHWhiteRef converts an sRGB colour to CIE LCh(ab) relative to the given
// XYZ reference white.
func ToLCHWhiteRef(c RGB, wref [3]float64) (LCH, error) {
	if !c.Valid() {
		return LCH{}, fmt.Errorf("colour %s is outside the sRGB gamut", c)
	}

	cf := colorful.Color{R: c.R, G: c.G, B: c.B}
	// go-colorful works on L* / 100; scale back to the conventional CIE range.
	// Rounding can push black and white a hair outside [0, 100].
	h, chroma, l := cf.HclWhiteRef(wref)
	return LCH{L: math.Max(0, math.Min(100, l*100)), C: chroma * 100, H: h}, nil
}
