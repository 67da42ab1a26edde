// Package state implements the interactive catalog browser as a bubbletea model.
package state

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rlacademy/rl-academy/internal/app"
	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/logging"
	"github.com/rlacademy/rl-academy/internal/navigation"
	"github.com/rlacademy/rl-academy/internal/report"
)

const (
	headerFooterLines     = 3
	defaultViewportWidth  = 80
	defaultViewportHeight = 22
)

// Academy is the browsing backend the TUI drives.
type Academy interface {
	Catalog(ctx context.Context) (*catalog.Catalog, error)
	Warnings(ctx context.Context) ([]catalog.Warning, error)
	Browse(ctx context.Context, state app.State) (app.View, error)
	Open(ctx context.Context, itemID string) (navigation.Playback, string, error)
	MarkDone(ctx context.Context, itemID, lessonID string) (navigation.Playback, error)
	LessonStatus(ctx context.Context, itemID, lessonID string) (navigation.Playback, string, error)
}

// Model represents the TUI model for bubbletea.
type Model struct {
	ctx     context.Context
	academy Academy
	catalog *catalog.Catalog

	// Browsing state
	state app.State
	view  app.View

	// Cycle options for the level and type filters; "" means no filter.
	levels []string
	types  []string

	uiState *UIState
	search  textinput.Model

	// Lesson pane
	playback *navigation.Playback
	status   string

	// Footer notices
	notices *report.Buffer
}

// NewModel creates a new TUI model. It fails when the catalog cannot be
// loaded; no partial catalog is shown.
func NewModel(ctx context.Context, academy Academy) (*Model, error) {
	if academy == nil {
		panic("NewModel: academy dependency cannot be nil")
	}
	cat, err := academy.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	search := textinput.New()
	search.Placeholder = "Search title or tags"
	search.Prompt = "/ "
	search.CharLimit = 120

	m := &Model{
		ctx:     ctx,
		academy: academy,
		catalog: cat,
		state:   app.Initial(),
		levels:  append([]string{""}, Levels(cat)...),
		types:   []string{"", catalog.TypeLesson.String(), catalog.TypeCourse.String(), catalog.TypePlaylist.String()},
		uiState: NewUIState(),
		search:  search,
		notices: report.NewBuffer(func(n report.Notice) {
			logging.Debug("tui notice", "kind", n.Kind, "text", n.Text)
		}),
	}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	// Load warnings reach the footer; the console is hidden behind the alt screen.
	warnings, err := academy.Warnings(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		m.notices.Warning(string(w))
	}
	return m, nil
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case lessonCompletedMsg:
		return m.handleLessonCompleted(msg)
	case errorMsg:
		m.notices.Error(msg.err.Error())
		return m, nil
	}
	return m, nil
}

// State returns the current browsing state.
func (m *Model) State() app.State {
	return m.state
}

// Listing returns the listing currently shown.
func (m *Model) Listing() app.View {
	return m.view
}

// Playback returns the open lesson, or nil when the lesson pane is closed.
func (m *Model) Playback() *navigation.Playback {
	return m.playback
}

// message returns the footer notice, if any.
func (m *Model) message() string {
	if n, ok := m.notices.Latest(); ok {
		return n.Text
	}
	return ""
}

// setState applies a transition and refreshes the listing.
func (m *Model) setState(next app.State) {
	m.state = next
	if err := m.refresh(); err != nil {
		m.notices.Error(err.Error())
	}
	m.uiState.ResetCursor()
	m.updateViewportContent()
}

func (m *Model) refresh() error {
	view, err := m.academy.Browse(m.ctx, m.state)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	m.view = view
	m.uiState.AdjustCursorBounds(len(view.Items))
	logging.Debug("tui listing refreshed", "title", view.Title, "items", len(view.Items))
	return nil
}

// activeTrack returns the track highlighted in the sidebar, which is only the
// selected track while its listing is shown.
func (m *Model) activeTrack() string {
	if m.state.Mode != app.ModeTrack {
		return ""
	}
	return m.state.Selection.Track
}

// selectedItem returns the item under the cursor.
func (m *Model) selectedItem() (catalog.Item, bool) {
	cursor := m.uiState.GetCursor()
	if cursor < 0 || cursor >= len(m.view.Items) {
		return catalog.Item{}, false
	}
	return m.view.Items[cursor], true
}

// Levels returns the distinct non-empty item levels in catalog order.
func Levels(cat *catalog.Catalog) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range cat.Items() {
		if item.Level == "" || seen[item.Level] {
			continue
		}
		seen[item.Level] = true
		out = append(out, item.Level)
	}
	return out
}

// next returns the option after current, wrapping around.
func next(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
