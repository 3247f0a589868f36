// Package mapview holds the externally hosted vegetation-index map pages shown on the dashboard.
package mapview

import "strings"

const (
	NDVI  = "NDVI"
	NDWI  = "NDWI"
	GNDVI = "GNDVI"
)

// Types lists the index types in display order; the first is the default.
var Types = []string{NDVI, NDWI, GNDVI}

type Entry struct {
	Type  string
	Label string
	URL   string
}

type Catalog struct {
	entries []Entry
}

// New builds a catalog from urls keyed by index type. Types without a URL are skipped.
func New(urls map[string]string) *Catalog {
	c := &Catalog{}
	for _, t := range Types {
		u := strings.TrimSpace(urls[t])
		if u == "" {
			continue
		}
		c.entries = append(c.entries, Entry{Type: t, Label: t, URL: u})
	}
	return c
}

func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the entry for mapType, or the first entry when mapType is unknown.
func (c *Catalog) Lookup(mapType string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Type == mapType {
			return e, true
		}
	}
	if len(c.entries) == 0 {
		return Entry{}, false
	}
	return c.entries[0], true
}
