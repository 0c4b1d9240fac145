package export

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jmylchreest/colorscales/internal/colormap"
	"github.com/jmylchreest/colorscales/internal/colour"
	"github.com/ulikunitz/xz"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{100, "100.0"},
		{0.5, "0.5"},
		{0.267004, "0.267004"},
		{53.24, "53.24"},
		{1e-05, "1e-05"},
		{-2.5e-07, "-2.5e-07"},
		{0.0001, "0.0001"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRowRecord(t *testing.T) {
	row := Row{
		Colorscale: "Greys",
		Index:      1,
		RGB:        colour.RGB{R: 1, G: 1, B: 1},
		LCH:        colour.LCH{L: 100, C: 0.5, H: 90},
	}
	want := []string{"Greys", "1", "1.0", "1.0", "1.0", "100.0", "0.5", "90.0"}
	if diff := cmp.Diff(want, row.Record()); diff != "" {
		t.Errorf("Record() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTable(t *testing.T) {
	reg := colormap.Default()
	names := append(slices.Clone(colormap.Catalog), "RdBu_r", "cubehelix")

	table, err := BuildTable(reg, names, colormap.DefaultSamples)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if table.Len() != len(names)*colormap.DefaultSamples {
		t.Fatalf("Len() = %d, want %d", table.Len(), len(names)*colormap.DefaultSamples)
	}

	for _, name := range names {
		rows := table.Scale(name)
		if len(rows) != colormap.DefaultSamples {
			t.Fatalf("%s: %d rows, want %d", name, len(rows), colormap.DefaultSamples)
		}

		cm, err := reg.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		samples, err := colormap.Sample(cm, colormap.DefaultSamples)
		if err != nil {
			t.Fatal(err)
		}

		for i, row := range rows {
			if row.Colorscale != name || row.Index != i+1 {
				t.Fatalf("row %d = %s/%d, want %s/%d", i, row.Colorscale, row.Index, name, i+1)
			}
			if row.RGB != samples[i] {
				t.Errorf("%s/%d RGB = %v, want %v", name, row.Index, row.RGB, samples[i])
			}
			if !row.RGB.Valid() {
				t.Errorf("%s/%d RGB out of range: %v", name, row.Index, row.RGB)
			}
			if row.LCH.L < 0 || row.LCH.L > 100 {
				t.Errorf("%s/%d L = %g, want within [0, 100]", name, row.Index, row.LCH.L)
			}
			if row.LCH.C < 0 {
				t.Errorf("%s/%d C = %g, want non-negative", name, row.Index, row.LCH.C)
			}
			if row.LCH.H < 0 || row.LCH.H >= 360 {
				t.Errorf("%s/%d H = %g, want within [0, 360)", name, row.Index, row.LCH.H)
			}
		}
	}

	greys := table.Scale("Greys")
	if got := greys[0].LCH.L; got < 99.99 {
		t.Errorf("Greys/1 L = %g, want 100", got)
	}
	if got := greys[len(greys)-1].LCH.L; got > 0.01 {
		t.Errorf("Greys/256 L = %g, want 0", got)
	}
}

func TestBuildTableUnknownName(t *testing.T) {
	_, err := BuildTable(colormap.Default(), []string{"viridis", "no-such-scale"}, colormap.DefaultSamples)
	if !errors.Is(err, colormap.ErrUnknownColormap) {
		t.Fatalf("BuildTable error = %v, want ErrUnknownColormap", err)
	}
}

func readCSV(t *testing.T, r io.Reader) [][]string {
	t.Helper()
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	return records
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	exp := NewExporter(colormap.Default(), nil)

	table, err := exp.Export(path, colormap.Catalog)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records := readCSV(t, f)

	if diff := cmp.Diff(Header, records[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	wantRows := len(colormap.Catalog) * colormap.DefaultSamples
	if len(records)-1 != wantRows || table.Len() != wantRows {
		t.Fatalf("got %d data rows (table %d), want %d", len(records)-1, table.Len(), wantRows)
	}

	// Scales appear in catalog order, each with indices 1..256.
	for s, name := range colormap.Catalog {
		first := records[1+s*colormap.DefaultSamples]
		last := records[(s+1)*colormap.DefaultSamples]
		if first[0] != name || first[1] != "1" {
			t.Errorf("scale %d starts with %s/%s, want %s/1", s, first[0], first[1], name)
		}
		if last[0] != name || last[1] != "256" {
			t.Errorf("scale %d ends with %s/%s, want %s/256", s, last[0], last[1], name)
		}
	}

	for _, row := range table.Rows {
		if !row.RGB.Valid() {
			t.Errorf("%s/%d RGB out of range: %v", row.Colorscale, row.Index, row.RGB)
		}
		if row.LCH.L < 0 || row.LCH.L > 100 || row.LCH.C < 0 || row.LCH.H < 0 || row.LCH.H >= 360 {
			t.Errorf("%s/%d LCH out of range: %+v", row.Colorscale, row.Index, row.LCH)
		}
	}

	// The first viridis row parses back to the sampled values.
	got := make([]float64, 6)
	for i, field := range records[1][2:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			t.Fatalf("field %d: %v", i, err)
		}
		got[i] = v
	}
	row := table.Rows[0]
	want := []float64{row.RGB.R, row.RGB.G, row.RGB.B, row.LCH.L, row.LCH.C, row.LCH.H}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("viridis/1 mismatch (-want +got):\n%s", diff)
	}
}

func TestExportUnknownNameWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	exp := NewExporter(colormap.Default(), nil)

	_, err := exp.Export(path, []string{"viridis", "bogus"})
	if !errors.Is(err, colormap.ErrUnknownColormap) {
		t.Fatalf("Export error = %v, want ErrUnknownColormap", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("output file should not exist, stat error = %v", statErr)
	}
}

func TestExportEmptyPath(t *testing.T) {
	exp := NewExporter(colormap.Default(), nil)
	if _, err := exp.Export("", []string{"viridis"}); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestExportXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath+".xz")
	exp := NewExporter(colormap.Default(), nil)

	if _, err := exp.Export(path, []string{"magma", "coolwarm"}); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		t.Fatalf("xz.NewReader: %v", err)
	}
	records := readCSV(t, r)

	if diff := cmp.Diff(Header, records[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if len(records) != 1+2*colormap.DefaultSamples {
		t.Errorf("got %d records, want %d", len(records), 1+2*colormap.DefaultSamples)
	}
}
