package colormap

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jmylchreest/colorscales/internal/colour"
)

const tol = 1e-9

func approxRGB(t *testing.T, what string, got, want colour.RGB, eps float64) {
	t.Helper()
	if math.Abs(got.R-want.R) > eps || math.Abs(got.G-want.G) > eps || math.Abs(got.B-want.B) > eps {
		t.Errorf("%s = %v, want %v (±%g)", what, got, want, eps)
	}
}

func TestCatalog(t *testing.T) {
	if len(Catalog) != 40 {
		t.Errorf("len(Catalog) = %d, want 40", len(Catalog))
	}

	reg := Default()
	if err := reg.Validate(Catalog); err != nil {
		t.Errorf("catalog does not resolve: %v", err)
	}
	if err := reg.Validate(ExtendedCatalog); err != nil {
		t.Errorf("extended catalog does not resolve: %v", err)
	}

	for _, name := range ExtendedCatalog {
		if slices.Contains(Catalog, name) {
			t.Errorf("%s is in both catalogs", name)
		}
	}

	wantLen := len(Catalog) + len(ExtendedCatalog)
	if reg.Len() != wantLen {
		t.Errorf("Default().Len() = %d, want %d", reg.Len(), wantLen)
	}
}

func TestBuiltinsStayInGamut(t *testing.T) {
	reg := Default()
	for _, name := range reg.Names() {
		cm, err := reg.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if cm.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, cm.Name())
		}
		colours, err := Sample(cm, DefaultSamples)
		if err != nil {
			t.Fatalf("Sample(%q): %v", name, err)
		}
		for i, c := range colours {
			if !c.Valid() {
				t.Errorf("%s sample %d out of gamut: %v", name, i, c)
			}
		}
	}
}

func TestKnownEndpoints(t *testing.T) {
	reg := Default()
	tests := []struct {
		name string
		t    float64
		want colour.RGB
		eps  float64
	}{
		{name: "viridis", t: 0, want: colour.RGB{R: 0.267004, G: 0.004874, B: 0.329415}, eps: tol},
		{name: "viridis", t: 1, want: colour.RGB{R: 0.993248, G: 0.906157, B: 0.143936}, eps: tol},
		{name: "Blues", t: 0, want: colour.MustParseHex("#f7fbff"), eps: tol},
		{name: "Blues", t: 1, want: colour.MustParseHex("#08306b"), eps: tol},
		{name: "Greys", t: 0, want: colour.RGB{R: 1, G: 1, B: 1}, eps: tol},
		{name: "Greys", t: 1, want: colour.RGB{}, eps: tol},
		{name: "RdBu", t: 0, want: colour.MustParseHex("#67001f"), eps: tol},
		{name: "RdBu", t: 0.5, want: colour.MustParseHex("#f7f7f7"), eps: tol},
		{name: "bwr", t: 0.5, want: colour.RGB{R: 1, G: 1, B: 1}, eps: tol},
		{name: "seismic", t: 0, want: colour.RGB{B: 0.3}, eps: tol},
		{name: "coolwarm", t: 0.5, want: colour.RGB{R: 0.865395197, G: 0.86541021, B: 0.865395561}, eps: tol},
		{name: "rainbow", t: 0, want: colour.RGB{R: 0.5, G: 0, B: 1}, eps: tol},
		{name: "rainbow", t: 1, want: colour.RGB{R: 1, G: 0, B: 0}, eps: 1e-12},
		{name: "hot", t: 0, want: colour.RGB{R: 0.0416}, eps: tol},
		{name: "autumn", t: 0.25, want: colour.RGB{R: 1, G: 0.25}, eps: tol},
		{name: "cubehelix", t: 0, want: colour.RGB{}, eps: tol},
		{name: "cubehelix", t: 1, want: colour.RGB{R: 1, G: 1, B: 1}, eps: tol},
	}

	for _, tt := range tests {
		cm, err := reg.Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.name, err)
		}
		approxRGB(t, fmt.Sprintf("%s.At(%g)", tt.name, tt.t), cm.At(tt.t), tt.want, tt.eps)
	}
}

func TestInteriorSamples(t *testing.T) {
	reg := Default()
	tests := []struct {
		name  string
		index int
		want  colour.RGB
		eps   float64
	}{
		{name: "coolwarm", index: 1, want: colour.RGB{R: 0.2298, G: 0.2987, B: 0.7537}, eps: 1e-4},
		{name: "coolwarm", index: 129, want: colour.RGB{R: 0.8674, G: 0.8644, B: 0.8626}, eps: 1e-4},
		{name: "coolwarm", index: 256, want: colour.RGB{R: 0.7057, G: 0.0156, B: 0.1502}, eps: 1e-4},
		{name: "viridis", index: 128, want: colour.RGB{R: 0.128729, G: 0.563265, B: 0.551229}, eps: tol},
		{name: "magma", index: 129, want: colour.RGB{R: 0.716387, G: 0.214982, B: 0.47529}, eps: tol},
	}

	for _, tt := range tests {
		cm, err := reg.Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.name, err)
		}
		colours, err := Sample(cm, DefaultSamples)
		if err != nil {
			t.Fatalf("Sample(%q): %v", tt.name, err)
		}
		// index is 1-based, matching the exported CSV.
		approxRGB(t, fmt.Sprintf("%s sample %d", tt.name, tt.index), colours[tt.index-1], tt.want, tt.eps)
	}
}

func TestListedTables(t *testing.T) {
	reg := Default()
	for name, table := range listedTables {
		if len(table) != DefaultSamples {
			t.Errorf("%s table has %d entries, want %d", name, len(table), DefaultSamples)
			continue
		}
		cm, err := reg.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if cm.Kind() != KindListed {
			t.Errorf("%s Kind() = %s, want %s", name, cm.Kind(), KindListed)
		}
		colours, err := Sample(cm, DefaultSamples)
		if err != nil {
			t.Fatalf("Sample(%q): %v", name, err)
		}
		for i, row := range table {
			want := colour.RGB{R: row[0], G: row[1], B: row[2]}
			if colours[i] != want {
				t.Errorf("%s sample %d = %v, want table entry %v", name, i, colours[i], want)
			}
		}
	}
}

func TestListedLookup(t *testing.T) {
	cm := MustListed("steps", []colour.RGB{{}, {R: 0.5}, {R: 1}, {G: 1}})

	tests := []struct {
		t    float64
		want colour.RGB
	}{
		{-1, colour.RGB{}},
		{0, colour.RGB{}},
		{0.24, colour.RGB{}},
		{0.25, colour.RGB{R: 0.5}},
		{0.5, colour.RGB{R: 1}},
		{0.99, colour.RGB{G: 1}},
		{1, colour.RGB{G: 1}},
		{2, colour.RGB{G: 1}},
		{math.NaN(), colour.RGB{}},
	}
	for _, tt := range tests {
		if got := cm.At(tt.t); got != tt.want {
			t.Errorf("At(%g) = %v, want %v", tt.t, got, tt.want)
		}
	}

	if _, err := NewListed("empty", nil); err == nil {
		t.Error("NewListed with no entries should fail")
	}
	if _, err := NewListed("bad", []colour.RGB{{R: 1.5}}); err == nil {
		t.Error("NewListed with an out-of-range entry should fail")
	}
}

func TestGistEarthAnchors(t *testing.T) {
	cm, err := Default().Lookup("gist_earth")
	if err != nil {
		t.Fatal(err)
	}
	if cm.Kind() != KindSegmented {
		t.Errorf("Kind() = %s, want %s", cm.Kind(), KindSegmented)
	}
	approxRGB(t, "gist_earth.At(0)", cm.At(0), colour.RGB{}, tol)
	approxRGB(t, "gist_earth.At(1)", cm.At(1), colour.RGB{R: 0.9922, G: 0.9961, B: 0.9843}, tol)
	if got := cm.At(0.2824).G; math.Abs(got-0.502) > tol {
		t.Errorf("At(0.2824).G = %g, want 0.502", got)
	}
}

func TestSegmentedInterpolation(t *testing.T) {
	cm := MustFromList("test", colour.RGB{}, colour.RGB{R: 1, G: 0.5, B: 0.25})

	approxRGB(t, "At(0.5)", cm.At(0.5), colour.RGB{R: 0.5, G: 0.25, B: 0.125}, tol)
	approxRGB(t, "At(-1)", cm.At(-1), colour.RGB{}, tol)
	approxRGB(t, "At(2)", cm.At(2), colour.RGB{R: 1, G: 0.5, B: 0.25}, tol)
	approxRGB(t, "At(NaN)", cm.At(math.NaN()), colour.RGB{}, tol)
}

func TestSegmentedDiscontinuity(t *testing.T) {
	step := []Anchor{
		{X: 0, Below: 0, Above: 0},
		{X: 0.5, Below: 0.2, Above: 0.8},
		{X: 1, Below: 1, Above: 1},
	}
	cm := MustSegmented("step", SegmentData{Red: step, Green: step, Blue: step})

	if got := cm.At(0.5).R; math.Abs(got-0.2) > tol {
		t.Errorf("At(0.5).R = %g, want the left-hand value 0.2", got)
	}
	if got := cm.At(0.75).R; math.Abs(got-0.9) > tol {
		t.Errorf("At(0.75).R = %g, want 0.9", got)
	}
	if got := cm.At(0.25).R; math.Abs(got-0.1) > tol {
		t.Errorf("At(0.25).R = %g, want 0.1", got)
	}
}

func TestNewSegmentedValidation(t *testing.T) {
	ok := []Anchor{{X: 0}, {X: 1, Below: 1, Above: 1}}
	tests := []struct {
		name string
		red  []Anchor
	}{
		{"too few anchors", []Anchor{{X: 0}}},
		{"does not start at zero", []Anchor{{X: 0.1}, {X: 1}}},
		{"does not end at one", []Anchor{{X: 0}, {X: 0.9}}},
		{"unsorted", []Anchor{{X: 0}, {X: 0.6}, {X: 0.4}, {X: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSegmented("bad", SegmentData{Red: tt.red, Green: ok, Blue: ok})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "red channel") {
				t.Errorf("error should name the channel: %v", err)
			}
		})
	}

	if _, err := FromList("single", colour.RGB{}); err == nil {
		t.Error("FromList with one colour should fail")
	}
}

func TestReverse(t *testing.T) {
	reg := Default()
	base, err := reg.Lookup("viridis")
	if err != nil {
		t.Fatal(err)
	}
	rev, err := reg.Lookup("viridis_r")
	if err != nil {
		t.Fatalf("Lookup(viridis_r): %v", err)
	}

	if rev.Name() != "viridis_r" {
		t.Errorf("Name() = %q, want viridis_r", rev.Name())
	}
	if rev.Kind() != base.Kind() {
		t.Errorf("Kind() = %s, want %s", rev.Kind(), base.Kind())
	}
	for _, x := range []float64{0, 0.3, 1} {
		approxRGB(t, "viridis_r", rev.At(x), base.At(1-x), tol)
	}
	if Reverse(rev) != base {
		t.Error("reversing twice should return the original colormap")
	}
}

func TestLookupUnknown(t *testing.T) {
	reg := Default()
	for _, name := range []string{"not-a-colormap", "_r", "nope_r", ""} {
		_, err := reg.Lookup(name)
		if !errors.Is(err, ErrUnknownColormap) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownColormap", name, err)
		}
	}

	err := reg.Validate([]string{"viridis", "foo", "magma", "bar"})
	if !errors.Is(err, ErrUnknownColormap) {
		t.Fatalf("Validate error = %v, want ErrUnknownColormap", err)
	}
	if !strings.Contains(err.Error(), `"foo", "bar"`) {
		t.Errorf("Validate should list every unknown name: %v", err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(MustFromList("b", colour.RGB{}, colour.RGB{R: 1}))
	reg.Register(MustFromList("a", colour.RGB{}, colour.RGB{G: 1}))
	reg.Register(NewFunctional("c", constant(0), constant(0), constant(1)))

	if diff := cmp.Diff([]string{"a", "b", "c"}, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestLinspace(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{0, nil},
		{1, []float64{0}},
		{2, []float64{0, 1}},
		{5, []float64{0, 0.25, 0.5, 0.75, 1}},
	}
	for _, tt := range tests {
		got := Linspace(tt.n)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
			t.Errorf("Linspace(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}

	values := Linspace(DefaultSamples)
	if values[0] != 0 || values[DefaultSamples-1] != 1 {
		t.Errorf("Linspace(%d) endpoints = %g, %g", DefaultSamples, values[0], values[DefaultSamples-1])
	}
}

func TestSample(t *testing.T) {
	cm, err := Default().Lookup("magma")
	if err != nil {
		t.Fatal(err)
	}

	colours, err := Sample(cm, DefaultSamples)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(colours) != DefaultSamples {
		t.Fatalf("len = %d, want %d", len(colours), DefaultSamples)
	}
	if colours[0] != cm.At(0) || colours[DefaultSamples-1] != cm.At(1) {
		t.Error("samples should include both endpoints")
	}
	if colours[51] != cm.At(51.0/255.0) {
		t.Errorf("sample 51 = %v, want At(51/255) = %v", colours[51], cm.At(51.0/255.0))
	}

	if _, err := Sample(cm, 1); err == nil {
		t.Error("Sample with n=1 should fail")
	}
}
