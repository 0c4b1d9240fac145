package colormap

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Registry holds colormaps by name.
type Registry struct {
	maps map[string]Colormap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		maps: make(map[string]Colormap),
	}
}

// Default returns a registry populated with every built-in colormap.
func Default() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}

// Register adds a colormap to the registry, replacing any colormap with the
// same name.
func (r *Registry) Register(cm Colormap) {
	r.maps[cm.Name()] = cm
}

// Lookup retrieves a colormap by name. A name ending in "_r" that is not
// registered itself resolves to the reversed variant of its base colormap.
func (r *Registry) Lookup(name string) (Colormap, error) {
	if cm, ok := r.maps[name]; ok {
		return cm, nil
	}
	if base, ok := isReversedName(name); ok {
		if cm, ok := r.maps[base]; ok {
			return Reverse(cm), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
}

// Names returns all registered names in sorted order. Reversed variants are
// not listed.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.maps))
}

// Len returns the number of registered colormaps.
func (r *Registry) Len() int {
	return len(r.maps)
}

// Validate checks that every name resolves. The returned error wraps
// ErrUnknownColormap and lists every unresolved name.
func (r *Registry) Validate(names []string) error {
	var unknown []string
	for _, name := range names {
		if _, err := r.Lookup(name); err != nil {
			unknown = append(unknown, strconv.Quote(name))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownColormap, strings.Join(unknown, ", "))
	}
	return nil
}
