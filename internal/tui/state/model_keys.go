package state

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rlacademy/rl-academy/internal/app"
	"github.com/rlacademy/rl-academy/internal/logging"
	"github.com/rlacademy/rl-academy/internal/navigation"
	"github.com/rlacademy/rl-academy/internal/tui/render"
)

// Footer messages.
const (
	msgNothingToPlay = "Nothing to play"
	msgMarked        = "Marked as completed"
)

// handleKeyMsg dispatches a key press to the focused pane.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.uiState.GetFocus() {
	case FocusSearch:
		return m.handleSearchKey(msg)
	case FocusPlayer:
		return m.handlePlayerKey(msg)
	}

	m.notices.Clear()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		m.handleMoveDown()
	case "k", "up":
		m.handleMoveUp()
	case "g":
		m.handleMoveTop()
	case "G":
		m.handleMoveBottom()
	case "/":
		m.handleSearchMode()
		return m, nil
	case "l":
		m.handleCycleLevel()
	case "t":
		m.handleCycleType()
	case "tab":
		m.handleToggleTracks()
	case "c":
		m.uiState.SetFocus(FocusItems)
		m.setState(m.state.ShowCompleted())
	case "h":
		m.uiState.SetFocus(FocusItems)
		m.search.SetValue("")
		m.setState(app.Initial())
	case "esc":
		if m.uiState.GetFocus() == FocusTracks {
			m.uiState.SetFocus(FocusItems)
		}
	case "enter":
		if m.uiState.GetFocus() == FocusTracks {
			m.handleSelectTrack()
			return m, nil
		}
		m.handleOpen()
	}
	return m, nil
}

// handleSearchKey feeds keys to the search input, refreshing the listing as
// the query changes.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		m.uiState.SetFocus(FocusItems)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if query := m.search.Value(); query != m.state.Selection.Search || m.state.Selection.Track != "" {
		m.setState(m.state.SetSearch(query))
	}
	return m, cmd
}

// handlePlayerKey handles keys while the lesson pane is open.
func (m *Model) handlePlayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.closePlayer()
	case "m":
		if m.playback != nil {
			return m, m.markDoneCmd(*m.playback)
		}
	case "n", "j", "down":
		m.stepLesson(1)
	case "p", "k", "up":
		m.stepLesson(-1)
	}
	return m, nil
}

// handleOpen opens the item under the cursor in the lesson pane.
func (m *Model) handleOpen() {
	item, ok := m.selectedItem()
	if !ok {
		return
	}
	pb, status, err := m.academy.Open(m.ctx, item.ID)
	if err != nil {
		if errors.Is(err, navigation.ErrNothingToPlay) {
			m.notices.Warning(msgNothingToPlay)
			return
		}
		m.notices.Error(err.Error())
		return
	}
	m.playback = &pb
	m.status = status
	m.uiState.SetFocus(FocusPlayer)
}

// stepLesson moves the lesson pane to the neighbouring lesson of the item.
func (m *Model) stepLesson(delta int) {
	if m.playback == nil {
		return
	}
	lessons := m.playback.Item.Lessons()
	for i, v := range lessons {
		if v.ID != m.playback.Lesson.ID {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(lessons) {
			return
		}
		pb, status, err := m.academy.LessonStatus(m.ctx, m.playback.Item.ID, lessons[j].ID)
		if err != nil {
			m.notices.Error(err.Error())
			return
		}
		m.playback = &pb
		m.status = status
		m.notices.Clear()
		return
	}
}

func (m *Model) closePlayer() {
	m.playback = nil
	m.status = ""
	m.notices.Clear()
	m.uiState.SetFocus(FocusItems)
	// Completions may change the completed listing.
	if err := m.refresh(); err != nil {
		m.notices.Error(err.Error())
	}
	m.updateViewportContent()
}

// handleLessonCompleted applies the result of a mark-completed request.
func (m *Model) handleLessonCompleted(msg lessonCompletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.Error("mark completed failed", "error", msg.err)
		m.notices.Error(msg.err.Error())
		return m, nil
	}
	if m.playback != nil && m.playback.Key() == msg.playback.Key() {
		m.status = msg.status
	}
	m.notices.Success(msgMarked)
	return m, nil
}

// handleWindowSizeMsg resizes the viewport to the terminal.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize(render.TrackPanelWidth())
	m.search.Width = msg.Width - 4
	m.updateViewportContent()
	m.uiState.EnsureCursorVisible(len(m.view.Items))
	return m, nil
}
