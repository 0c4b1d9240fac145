package colormap

// Catalog is the ordered list of colour scales that are rendered and
// exported. Edit this list to change the output.
var Catalog = []string{
	// perceptually uniform sequential
	"viridis", "plasma", "inferno", "magma", "cividis",

	// sequential
	"Greys", "Purples", "Blues", "Greens", "Oranges", "Reds",
	"YlOrBr", "YlOrRd", "OrRd", "PuRd", "RdPu", "BuPu",
	"GnBu", "PuBu", "YlGnBu", "PuBuGn", "BuGn", "YlGn",

	// diverging
	"PiYG", "PRGn", "BrBG", "PuOr", "RdGy", "RdBu",
	"RdYlBu", "RdYlGn", "Spectral", "coolwarm", "bwr", "seismic",
	"berlin", "managua", "vanimo",

	// misc
	"gist_earth", "rainbow",
}

// ExtendedCatalog lists the additional built-in colour scales that are
// registered but not exported by default.
var ExtendedCatalog = []string{
	// sequential 2
	"bone", "spring", "summer", "autumn", "winter", "cool", "Wistia",
	"hot", "afmhot", "gist_heat", "copper",

	// misc
	"gnuplot", "cubehelix", "brg", "jet",
}
