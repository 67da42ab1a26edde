package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// Focus identifies which pane receives key input.
type Focus int

const (
	// FocusItems is the item list.
	FocusItems Focus = iota
	// FocusSearch is the search input.
	FocusSearch
	// FocusTracks is the track sidebar.
	FocusTracks
	// FocusPlayer is the lesson pane.
	FocusPlayer
)

// UIState manages all UI-specific state for the TUI.
// This includes viewport management, cursor positions and focus, kept apart
// from the browsing state.
type UIState struct {
	// Viewport management
	viewport viewport.Model
	width    int
	height   int

	// Cursor and navigation
	cursor      int
	trackCursor int
	focus       Focus
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
	}
}

// GetViewport returns the current viewport model.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width of the UI.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// SetHeight updates the height of the UI.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// UpdateViewportSize resizes the viewport to the space left by the header,
// footer and track sidebar.
func (u *UIState) UpdateViewportSize(sidebarWidth int) {
	viewportHeight := u.height - headerFooterLines
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	viewportWidth := u.width - sidebarWidth
	if viewportWidth < 10 {
		viewportWidth = u.width
	}
	u.viewport = viewport.New(viewportWidth, viewportHeight)
}

// GetCursor returns the current cursor position.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// SetCursor updates the cursor position.
func (u *UIState) SetCursor(cursor int) {
	u.cursor = cursor
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// GetTrackCursor returns the sidebar cursor position.
func (u *UIState) GetTrackCursor() int {
	return u.trackCursor
}

// MoveTrackCursor moves the sidebar cursor by delta within [0, listLen).
func (u *UIState) MoveTrackCursor(delta, listLen int) {
	u.trackCursor += delta
	if u.trackCursor >= listLen {
		u.trackCursor = listLen - 1
	}
	if u.trackCursor < 0 {
		u.trackCursor = 0
	}
}

// GetFocus returns the focused pane.
func (u *UIState) GetFocus() Focus {
	return u.focus
}

// SetFocus changes the focused pane.
func (u *UIState) SetFocus(f Focus) {
	u.focus = f
}

// MoveCursorUp moves the cursor up one position if possible.
func (u *UIState) MoveCursorUp() {
	if u.cursor > 0 {
		u.cursor--
	}
}

// MoveCursorDown moves the cursor down one position if possible.
func (u *UIState) MoveCursorDown(listLen int) {
	if u.cursor < listLen-1 {
		u.cursor++
	}
}

// EnsureCursorVisible adjusts the viewport to ensure the cursor is visible.
func (u *UIState) EnsureCursorVisible(listLen int) {
	if listLen == 0 {
		return
	}

	lineOffset := u.viewport.YOffset
	viewportHeight := u.viewport.Height

	// If cursor is above viewport, scroll up
	if u.cursor < lineOffset {
		u.viewport.SetYOffset(u.cursor)
	}

	// If cursor is below viewport, scroll down
	if u.cursor >= lineOffset+viewportHeight {
		u.viewport.SetYOffset(u.cursor - viewportHeight + 1)
	}
}

// AdjustCursorBounds ensures the cursor is within valid bounds.
func (u *UIState) AdjustCursorBounds(listLen int) {
	if listLen == 0 {
		u.cursor = 0
		return
	}
	if u.cursor >= listLen {
		u.cursor = listLen - 1
	}
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// ResetCursor resets the cursor to the first item.
func (u *UIState) ResetCursor() {
	u.cursor = 0
	u.viewport.GotoTop()
}
