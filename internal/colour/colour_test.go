package colour

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "with hash",
			input: "#ff0000",
			want:  RGB{R: 1, G: 0, B: 0},
		},
		{
			name:  "without hash",
			input: "0000ff",
			want:  RGB{R: 0, G: 0, B: 1},
		},
		{
			name:  "uppercase",
			input: "#FFFFFF",
			want:  RGB{R: 1, G: 1, B: 1},
		},
		{
			name:    "too short",
			input:   "#fff",
			wantErr: true,
		},
		{
			name:    "not hex",
			input:   "#gg0000",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, h := range []string{"#440154", "#fde725", "#000000", "#ffffff", "#3b4cc0"} {
		if got := MustParseHex(h).Hex(); got != h {
			t.Errorf("MustParseHex(%q).Hex() = %q", h, got)
		}
	}
}

func TestBytesRounding(t *testing.T) {
	r, g, b := RGB{R: 0.5, G: 0.001, B: 1.2}.Bytes()
	if r != 128 || g != 0 || b != 255 {
		t.Errorf("Bytes() = (%d, %d, %d), want (128, 0, 255)", r, g, b)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	if got != (RGB{R: 1, G: 0, B: 1}) {
		t.Errorf("FromColor(magenta) = %v", got)
	}
}

func TestLerp(t *testing.T) {
	a := RGB{R: 0, G: 0.5, B: 1}
	b := RGB{R: 1, G: 0.5, B: 0}
	got := Lerp(a, b, 0.25)
	want := RGB{R: 0.25, G: 0.5, B: 0.75}
	if got != want {
		t.Errorf("Lerp() = %v, want %v", got, want)
	}
}

func TestValidAndClamped(t *testing.T) {
	c := RGB{R: -0.1, G: 0.5, B: 1.5}
	if c.Valid() {
		t.Error("expected out-of-range colour to be invalid")
	}
	if got := c.Clamped(); got != (RGB{R: 0, G: 0.5, B: 1}) || !got.Valid() {
		t.Errorf("Clamped() = %v", got)
	}
	if (RGB{R: math.NaN()}).Valid() {
		t.Error("expected NaN colour to be invalid")
	}
}

func TestToLCH(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want LCH
		tol  float64
	}{
		{"black", RGB{}, LCH{L: 0, C: 0, H: 0}, 1e-6},
		{"red", RGB{R: 1}, LCH{L: 53.24, C: 104.55, H: 40.0}, 0.05},
		{"green", RGB{G: 1}, LCH{L: 87.73, C: 119.78, H: 136.02}, 0.05},
		{"blue", RGB{B: 1}, LCH{L: 32.30, C: 133.82, H: 306.28}, 0.05},
		{"viridis start", RGB{R: 0.267004, G: 0.004874, B: 0.329415}, LCH{L: 14.95, C: 51.83, H: 321.50}, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToLCH(tt.in)
			if err != nil {
				t.Fatalf("ToLCH(%v) unexpected error: %v", tt.in, err)
			}
			if math.Abs(got.L-tt.want.L) > tt.tol ||
				math.Abs(got.C-tt.want.C) > tt.tol ||
				math.Abs(got.H-tt.want.H) > tt.tol {
				t.Errorf("ToLCH(%v) = %v, want %v (±%g)", tt.in, got, tt.want, tt.tol)
			}
		})
	}
}

func TestToLCHAchromatic(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got, err := ToLCH(RGB{R: v, G: v, B: v})
		if err != nil {
			t.Fatalf("ToLCH(grey %g) unexpected error: %v", v, err)
		}
		if got.L < 0 || got.L > 100 {
			t.Errorf("grey %g: L = %g, want within [0, 100]", v, got.L)
		}
		if got.C > 0.05 {
			t.Errorf("grey %g: C = %g, want ~0", v, got.C)
		}
	}

	white, _ := ToLCH(RGB{R: 1, G: 1, B: 1})
	if math.Abs(white.L-100) > 1e-6 {
		t.Errorf("white L = %g, want 100", white.L)
	}
}

func TestToLCHOutOfGamut(t *testing.T) {
	_, err := ToLCH(RGB{R: 1.01})
	if err == nil {
		t.Fatal("expected error for out-of-gamut colour")
	}
	if !strings.Contains(err.Error(), "outside the sRGB gamut") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestToLCHWhiteRef(t *testing.T) {
	// White relative to its own reference point is achromatic.
	got, err := ToLCHWhiteRef(RGB{R: 1, G: 1, B: 1}, colorful.D50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d65, _ := ToLCH(RGB{R: 1, G: 1, B: 1})
	if got.C <= d65.C {
		t.Errorf("D65 white under D50 should carry chroma: got C=%g, D65 C=%g", got.C, d65.C)
	}
}

func TestGradientBlocks(t *testing.T) {
	if got := GradientBlocks(nil); got != "" {
		t.Errorf("GradientBlocks(nil) = %q, want empty", got)
	}

	red := RGB{R: 1}
	blue := RGB{B: 1}
	got := GradientBlocks([]RGB{red, red, blue})

	if n := strings.Count(got, ansiBgPrefix); n != 2 {
		t.Errorf("expected 2 escape sequences for 2 distinct colours, got %d in %q", n, got)
	}
	if !strings.Contains(got, "\033[48;2;255;0;0m  ") {
		t.Errorf("expected two red cells, got %q", got)
	}
	if !strings.HasSuffix(got, "\033[48;2;0;0;255m "+ansiReset) {
		t.Errorf("expected a blue cell followed by reset, got %q", got)
	}
}
