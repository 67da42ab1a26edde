// Package app holds the browsing state and the academy client that ties the
// catalog, filter engine, navigation and progress ledger together.
package app

import (
	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/filter"
	"github.com/rlacademy/rl-academy/internal/progress"
)

// Section titles.
const (
	TitleHighlights = "Highlights"
	TitleResults    = "Results"
	TitleFiltered   = "Filtered"
	TitleCompleted  = "Recently completed"
)

// Mode selects which listing the state presents.
type Mode int

const (
	// ModeBrowse lists items passing the selection, titled by the search.
	ModeBrowse Mode = iota
	// ModeFiltered lists items passing the selection after a level or type change.
	ModeFiltered
	// ModeTrack lists the active track's items in track order.
	ModeTrack
	// ModeCompleted lists items with at least one completed lesson.
	ModeCompleted
)

// State is the transient browsing state. Transitions return a new value and
// never modify the receiver.
type State struct {
	Selection filter.Selection
	Mode      Mode
}

// View is a listing ready for presentation.
type View struct {
	Title string
	Items []catalog.Item
}

// Initial returns the state shown right after the catalog loads.
func Initial() State {
	return State{Mode: ModeBrowse}
}

// SetSearch changes the search text and leaves the active track.
func (s State) SetSearch(query string) State {
	s.Selection.Search = query
	s.Selection.Track = ""
	s.Mode = ModeBrowse
	return s
}

// SetLevel changes the level filter. Empty clears it.
func (s State) SetLevel(level string) State {
	s.Selection.Level = level
	s.Mode = ModeFiltered
	return s
}

// SetType changes the type filter. Empty clears it.
func (s State) SetType(typ string) State {
	s.Selection.Type = typ
	s.Mode = ModeFiltered
	return s
}

// SelectTrack switches to the listing of trackID.
func (s State) SelectTrack(trackID string) State {
	s.Selection.Track = trackID
	s.Mode = ModeTrack
	return s
}

// ShowCompleted switches to the completed listing.
func (s State) ShowCompleted() State {
	s.Mode = ModeCompleted
	return s
}

// View derives the listing for the state. An unknown active track yields an
// empty listing titled with the requested identifier.
func (s State) View(cat *catalog.Catalog, engine *filter.Engine, ledger *progress.Ledger) View {
	switch s.Mode {
	case ModeTrack:
		track, ok := cat.Track(s.Selection.Track)
		if !ok {
			return View{Title: s.Selection.Track}
		}
		return View{Title: track.Title, Items: filter.ItemsForTrack(cat, track.ID)}
	case ModeCompleted:
		return View{Title: TitleCompleted, Items: filter.CompletedItems(cat, ledger)}
	case ModeFiltered:
		return View{Title: TitleFiltered, Items: engine.VisibleItems(cat, s.Selection)}
	}

	title := TitleHighlights
	if s.Selection.Search != "" {
		title = TitleResults
	}
	return View{Title: title, Items: engine.VisibleItems(cat, s.Selection)}
}
