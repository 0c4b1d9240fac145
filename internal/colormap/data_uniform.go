package colormap

import "github.com/jmylchreest/colorscales/internal/colour"

// Scientific colour maps by Fabio Crameri, https://www.fabiocrameri.ch/colourmaps.
// Stored as evenly spaced 8-bit stops reduced from the published tables.
var crameriMaps = map[string][]colour.RGB{
	"berlin": {
		hex("#9eb0ff"), hex("#6aa1e5"), hex("#3a86b8"), hex("#275d7c"), hex("#1a3444"),
		hex("#11181d"), hex("#1b0d08"), hex("#3b130a"), hex("#63241a"), hex("#8f4335"),
		hex("#c0706a"), hex("#e7999a"), hex("#ffadad"),
	},
	"managua": {
		hex("#ffcf67"), hex("#e9a753"), hex("#d08646"), hex("#b3683f"), hex("#8f4d40"),
		hex("#683946"), hex("#4b3050"), hex("#3b3861"), hex("#384e7b"), hex("#406d99"),
		hex("#4f90b8"), hex("#62b5d7"), hex("#75dbf0"), hex("#83ffff"),
	},
	"vanimo": {
		hex("#ffcdfd"), hex("#e89ee0"), hex("#cc6fc2"), hex("#a24896"), hex("#6d2e64"),
		hex("#3b1e37"), hex("#191919"), hex("#222d17"), hex("#344a1f"), hex("#4c6b27"),
		hex("#6a8f33"), hex("#8fb24c"), hex("#bedd8b"),
	},
}

func hex(s string) colour.RGB {
	return colour.MustParseHex(s)
}
