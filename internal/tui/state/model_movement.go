package state

// handleMoveDown moves the focused cursor down by one position.
func (m *Model) handleMoveDown() {
	if m.uiState.GetFocus() == FocusTracks {
		m.uiState.MoveTrackCursor(1, len(m.catalog.Tracks()))
		return
	}
	listLen := len(m.view.Items)
	m.uiState.MoveCursorDown(listLen)
	m.updateViewportContent()
	m.uiState.EnsureCursorVisible(listLen)
}

// handleMoveUp moves the focused cursor up by one position.
func (m *Model) handleMoveUp() {
	if m.uiState.GetFocus() == FocusTracks {
		m.uiState.MoveTrackCursor(-1, len(m.catalog.Tracks()))
		return
	}
	m.uiState.MoveCursorUp()
	m.updateViewportContent()
	m.uiState.EnsureCursorVisible(len(m.view.Items))
}

// handleMoveTop moves the cursor to the top of the list.
func (m *Model) handleMoveTop() {
	listLen := len(m.view.Items)
	if listLen == 0 {
		return
	}
	m.uiState.SetCursor(0)
	m.updateViewportContent()
	m.uiState.EnsureCursorVisible(listLen)
}

// handleMoveBottom moves the cursor to the bottom of the list.
func (m *Model) handleMoveBottom() {
	listLen := len(m.view.Items)
	if listLen == 0 {
		return
	}
	m.uiState.SetCursor(listLen - 1)
	m.updateViewportContent()
	m.uiState.EnsureCursorVisible(listLen)
}

// handleSearchMode focuses the search input.
func (m *Model) handleSearchMode() {
	m.uiState.SetFocus(FocusSearch)
	m.search.SetValue(m.state.Selection.Search)
	m.search.CursorEnd()
	m.search.Focus()
}

// handleCycleLevel switches to the next level filter.
func (m *Model) handleCycleLevel() {
	m.setState(m.state.SetLevel(next(m.levels, m.state.Selection.Level)))
}

// handleCycleType switches to the next type filter.
func (m *Model) handleCycleType() {
	m.setState(m.state.SetType(next(m.types, m.state.Selection.Type)))
}

// handleToggleTracks moves focus between the item list and the track sidebar.
func (m *Model) handleToggleTracks() {
	if m.uiState.GetFocus() == FocusTracks {
		m.uiState.SetFocus(FocusItems)
	} else {
		m.uiState.SetFocus(FocusTracks)
	}
	m.updateViewportContent()
}

// handleSelectTrack shows the track under the sidebar cursor.
func (m *Model) handleSelectTrack() {
	tracks := m.catalog.Tracks()
	cursor := m.uiState.GetTrackCursor()
	if cursor < 0 || cursor >= len(tracks) {
		return
	}
	m.uiState.SetFocus(FocusItems)
	m.setState(m.state.SelectTrack(tracks[cursor].ID))
}
