// Package catalog holds the server-provided list of valid expense categories.
// The catalog is fetched once per run and treated as immutable; a category's
// identifier is its 1-based position in the server's ordering.
package catalog

import (
	"strings"
)

// Catalog is a flat ordered list of category names, lowercased on load.
type Catalog struct {
	names []string
	index map[string]int
}

// New builds a catalog from the server's ordered category names. Names are
// trimmed and lowercased; ordering is preserved because position defines the
// category identifier.
func New(names []string) *Catalog {
	c := &Catalog{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		c.names = append(c.names, normalized)
		if _, exists := c.index[normalized]; !exists {
			c.index[normalized] = len(c.names)
		}
	}
	return c
}

// Resolve maps a category name to its 1-based identifier. The lookup is
// case-insensitive and ignores surrounding whitespace.
func (c *Catalog) Resolve(name string) (int, bool) {
	id, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// Names returns the ordered, lowercased category names.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.names)
}
