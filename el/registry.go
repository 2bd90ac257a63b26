package el

import (
	"slices"

	"github.com/crel-dev/crel/pkg/node"
)

// registry maps element names to descriptors.
var registry = func() map[string]*node.Tag {
	m := make(map[string]*node.Tag, len(all))
	for _, t := range all {
		m[t.Name()] = t
	}
	return m
}()

// Lookup returns the descriptor for the element name.
func Lookup(name string) (*node.Tag, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names returns the registered element names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsVoidElement reports whether name is a registered void element.
func IsVoidElement(name string) bool {
	t, ok := registry[name]
	return ok && t.Void()
}
