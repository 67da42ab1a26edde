package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rlacademy/rl-academy/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	width := m.uiState.GetWidth()

	var body string
	if m.playback != nil {
		body = render.Player(render.PlayerState{
			Title:    m.playback.Title(),
			EmbedURL: m.playback.Lesson.EmbedURL(),
			Status:   m.status,
			Lessons:  m.playback.Item.Lessons(),
			Current:  m.playback.Lesson.ID,
			Width:    width,
		})
	} else {
		sidebar := render.TrackPanel(render.TrackPanelState{
			Tracks:   m.catalog.Tracks(),
			ActiveID: m.activeTrack(),
			Cursor:   m.uiState.GetTrackCursor(),
			Focused:  m.uiState.GetFocus() == FocusTracks,
			Height:   m.uiState.GetViewport().Height,
		})
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.uiState.GetViewport().View())
	}

	header := render.Header(render.HeaderState{
		Title: m.view.Title,
		Count: len(m.view.Items),
		Level: m.state.Selection.Level,
		Type:  m.state.Selection.Type,
		Width: width,
	})

	searchView := ""
	if m.uiState.GetFocus() == FocusSearch {
		searchView = m.search.View()
	}
	footer := render.Footer(render.FooterState{
		SearchMode:    m.uiState.GetFocus() == FocusSearch,
		TracksFocused: m.uiState.GetFocus() == FocusTracks,
		PlayerOpen:    m.playback != nil,
		SearchView:    searchView,
		Message:       m.message(),
	})

	return strings.Join([]string{header, body, footer}, "\n")
}

// updateViewportContent re-renders the item rows into the viewport.
func (m *Model) updateViewportContent() {
	vp := m.uiState.GetViewport()
	if len(m.view.Items) == 0 {
		vp.SetContent(render.Empty())
		return
	}

	rowWidth := vp.Width
	cursor := m.uiState.GetCursor()
	rows := make([]string, 0, len(m.view.Items))
	for i, item := range m.view.Items {
		rows = append(rows, render.Row(render.RowState{
			Item:     item,
			Width:    rowWidth,
			Selected: i == cursor && m.uiState.GetFocus() != FocusTracks,
		}))
	}
	vp.SetContent(strings.Join(rows, "\n"))
}

// Run starts the interactive browser and blocks until the user quits.
func Run(m *Model) error {
	m.updateViewportContent()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
