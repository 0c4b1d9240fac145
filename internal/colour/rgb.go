// Package colour provides the colour types and colour-space conversions used
// when sampling and exporting colour scales.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGB is an sRGB colour with components in the range [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// String returns the colour as "rgb(r, g, b)" with normalised components.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%.4f, %.4f, %.4f)", c.R, c.G, c.B)
}

// Hex returns the colour as a hex string (e.g., "#440154").
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Bytes returns the colour as 8-bit channels, rounding to the nearest level.
func (c RGB) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// RGBA converts the colour to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	r, g, b := c.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Valid reports whether every component lies in [0, 1].
func (c RGB) Valid() bool {
	return inUnit(c.R) && inUnit(c.G) && inUnit(c.B)
}

// Clamped returns the colour with every component clipped to [0, 1].
func (c RGB) Clamped() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Lerp interpolates linearly between a and b; t=0 yields a, t=1 yields b.
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// ParseHex parses "#rrggbb" or "rrggbb" into an RGB value.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return FromBytes(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is meant for package-level colour tables.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromBytes converts 8-bit channels to a normalised RGB value.
func FromBytes(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// FromColor converts any color.Color to RGB, ignoring alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: float64(r) / 65535.0, G: float64(g) / 65535.0, B: float64(b) / 65535.0}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
