package colormap

import "github.com/jmylchreest/colorscales/internal/colour"

// registerBuiltins adds every built-in colormap to r.
func registerBuiltins(r *Registry) {
	for name, stops := range brewerSequential {
		r.Register(MustFromList(name, hexes(stops)...))
	}
	for name, stops := range brewerDiverging {
		r.Register(MustFromList(name, hexes(stops)...))
	}
	for name, table := range listedTables {
		r.Register(MustListed(name, tableColours(table)))
	}
	for name, colours := range crameriMaps {
		r.Register(MustFromList(name, colours...))
	}

	r.Register(MustFromList("coolwarm", coolwarm...))

	r.Register(MustFromList("bwr",
		colour.RGB{R: 0, G: 0, B: 1},
		colour.RGB{R: 1, G: 1, B: 1},
		colour.RGB{R: 1, G: 0, B: 0},
	))
	r.Register(MustFromList("seismic",
		colour.RGB{R: 0, G: 0, B: 0.3},
		colour.RGB{R: 0, G: 0, B: 1},
		colour.RGB{R: 1, G: 1, B: 1},
		colour.RGB{R: 1, G: 0, B: 0},
		colour.RGB{R: 0.5, G: 0, B: 0},
	))
	r.Register(MustFromList("brg",
		colour.RGB{R: 0, G: 0, B: 1},
		colour.RGB{R: 1, G: 0, B: 0},
		colour.RGB{R: 0, G: 1, B: 0},
	))
	r.Register(MustFromList("Wistia", hexes([]string{"#e4ff7a", "#ffe81a", "#ffbd00", "#ffa000", "#fc7f00"})...))

	r.Register(MustSegmented("hot", hotData))
	r.Register(MustSegmented("copper", copperData))
	r.Register(MustSegmented("bone", boneData))
	r.Register(MustSegmented("jet", jetData))
	r.Register(MustSegmented("gist_earth", gistEarthData))

	for _, f := range functionalMaps() {
		r.Register(f)
	}
}

func hexes(stops []string) []colour.RGB {
	colours := make([]colour.RGB, len(stops))
	for i, s := range stops {
		colours[i] = hex(s)
	}
	return colours
}
