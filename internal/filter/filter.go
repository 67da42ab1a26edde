// Package filter derives the visible subsets of a catalog: the ad-hoc
// search/level/type view, the track view and the completed view.
package filter

import (
	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/progress"
	"github.com/rlacademy/rl-academy/internal/search"
)

// Selection is the transient search and filter state.
// Empty fields do not constrain the result.
type Selection struct {
	Search string
	Level  string
	Type   string
	Track  string
}

// IsEmpty reports whether no search, level or type constraint is set.
func (s Selection) IsEmpty() bool {
	return s.Search == "" && s.Level == "" && s.Type == ""
}

// Engine filters catalog items with a search provider.
type Engine struct {
	provider search.Provider
}

// NewEngine creates an engine. A nil provider uses substring search.
func NewEngine(provider search.Provider) *Engine {
	if provider == nil {
		provider = search.NewSubstringProvider()
	}
	return &Engine{provider: provider}
}

// Provider returns the search provider in use.
func (e *Engine) Provider() search.Provider {
	return e.provider
}

// VisibleItems returns the items passing search, level and type, in catalog
// order. Selection.Track is ignored here; use ItemsForTrack for track views.
func (e *Engine) VisibleItems(cat *catalog.Catalog, sel Selection) []catalog.Item {
	items := cat.Items()
	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if e.Matches(item, sel) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether a single item passes the selection.
func (e *Engine) Matches(item catalog.Item, sel Selection) bool {
	if sel.Search != "" && !e.provider.Match(item, sel.Search) {
		return false
	}
	if sel.Level != "" && item.Level != sel.Level {
		return false
	}
	if sel.Type != "" && item.Type != catalog.ParseType(sel.Type) {
		return false
	}
	return true
}

// ItemsForTrack resolves a track's item identifiers in declared order.
// Identifiers that do not resolve are dropped. An unknown track yields nil.
func ItemsForTrack(cat *catalog.Catalog, trackID string) []catalog.Item {
	track, ok := cat.Track(trackID)
	if !ok {
		return nil
	}
	out := make([]catalog.Item, 0, len(track.ItemIDs))
	for _, id := range track.ItemIDs {
		if item, ok := cat.Item(id); ok {
			out = append(out, item)
		}
	}
	return out
}

// CompletedItems returns each item owning at least one completed lesson,
// once, ordered by its first occurrence in the ledger. Unknown item
// identifiers are dropped.
func CompletedItems(cat *catalog.Catalog, ledger *progress.Ledger) []catalog.Item {
	if ledger == nil {
		return nil
	}
	keys := ledger.Keys()
	seen := make(map[string]bool, len(keys))
	out := make([]catalog.Item, 0, len(keys))
	for _, key := range keys {
		if seen[key.ItemID] {
			continue
		}
		seen[key.ItemID] = true
		if item, ok := cat.Item(key.ItemID); ok {
			out = append(out, item)
		}
	}
	return out
}
