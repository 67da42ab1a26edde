package catalog

// Catalog is the read-only set of items and tracks.
// It is built once by Load and never mutated afterwards.
type Catalog struct {
	items  []Item
	tracks []Track
	byID   map[string]int
}

// New builds a catalog from already validated items and tracks.
// Item identifiers must be unique; Load enforces that for documents.
func New(items []Item, tracks []Track) *Catalog {
	byID := make(map[string]int, len(items))
	for i, item := range items {
		byID[item.ID] = i
	}
	if tracks == nil {
		tracks = []Track{}
	}
	return &Catalog{items: items, tracks: tracks, byID: byID}
}

// Items returns all items in document order. Callers must not modify it.
func (c *Catalog) Items() []Item {
	return c.items
}

// Tracks returns all tracks in document order. Callers must not modify it.
func (c *Catalog) Tracks() []Track {
	return c.tracks
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item looks up an item by identifier.
func (c *Catalog) Item(id string) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// Track looks up a track by identifier.
func (c *Catalog) Track(id string) (Track, bool) {
	for _, t := range c.tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}
