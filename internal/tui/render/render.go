// Package render turns catalog browsing state into styled terminal text.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/rlacademy/rl-academy/internal/format"
	"github.com/rlacademy/rl-academy/internal/progress"
)

const (
	typeWidth          = 9
	levelWidth         = 14
	metaWidth          = 14
	spacesBetween      = 6
	defaultTitleWidth  = 40
	trackPanelWidth    = 24
	activeTrackSymbol  = "▸"
	completedCheckmark = "✓"
)

// HeaderState defines the inputs needed to render the header.
type HeaderState struct {
	Title string
	Count int
	Level string
	Type  string
	Width int
}

// RowState defines the inputs needed to render an item row.
type RowState struct {
	Item     catalog.Item
	Width    int
	Selected bool
}

// TrackPanelState defines the inputs needed to render the track sidebar.
type TrackPanelState struct {
	Tracks   []catalog.Track
	ActiveID string
	Cursor   int
	Focused  bool
	Height   int
}

// PlayerState defines the inputs needed to render the lesson pane.
type PlayerState struct {
	Title    string
	EmbedURL string
	Status   string
	Lessons  []catalog.Video
	Current  string
	Width    int
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	SearchMode    bool
	TracksFocused bool
	PlayerOpen    bool
	SearchView    string
	Message       string
}

// Header renders the section title and active filters.
func Header(state HeaderState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	filterStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	level := state.Level
	if level == "" {
		level = "all"
	}
	typ := state.Type
	if typ == "" {
		typ = "all"
	}
	title := titleStyle.Render(fmt.Sprintf("%s (%d)", state.Title, state.Count))
	filters := filterStyle.Render(fmt.Sprintf("level: %s  type: %s", level, typ))
	return truncate(title+"  "+filters, state.Width)
}

// Row renders a single item row.
func Row(state RowState) string {
	rowStyle := lipgloss.NewStyle()
	if state.Selected {
		rowStyle = rowStyle.Background(lipgloss.Color(ansiColorNumber(colors.Blue))).Foreground(lipgloss.Color("0"))
	}

	titleWidth := calculateTitleWidth(state.Width)
	title := format.Title(state.Item)
	if tags := format.TagLine(state.Item.Tags); tags != "" {
		title += "  " + tags
	}

	row := fmt.Sprintf("%-*s  %-*s  %-*s  %s",
		typeWidth, format.TypeBadge(state.Item),
		levelWidth, cut(format.LevelLabel(state.Item), levelWidth),
		metaWidth, state.Item.Meta(),
		cut(title, titleWidth),
	)
	return rowStyle.Render(row)
}

// Empty renders the empty listing notice.
func Empty() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return lipgloss.NewStyle().Bold(true).Render(format.EmptyTitle) + "\n" + muted.Render(format.EmptyHint)
}

// TrackPanel renders the track sidebar.
func TrackPanel(state TrackPanelState) string {
	border := lipgloss.NormalBorder()
	style := lipgloss.NewStyle().
		Border(border, false, true, false, false).
		Width(trackPanelWidth).
		PaddingRight(1)
	if state.Focused {
		style = style.BorderForeground(lipgloss.Color(ansiColorNumber(colors.Cyan)))
	}
	if state.Height > 0 {
		style = style.Height(state.Height)
	}

	heading := lipgloss.NewStyle().Bold(true).Render("Tracks")
	lines := []string{heading}
	if len(state.Tracks) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(none)"))
	}
	for i, t := range state.Tracks {
		marker := " "
		if t.ID == state.ActiveID {
			marker = activeTrackSymbol
		}
		line := cut(marker+" "+t.Title, trackPanelWidth-1)
		if state.Focused && i == state.Cursor {
			line = lipgloss.NewStyle().Reverse(true).Render(line)
		}
		lines = append(lines, line)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Player renders the lesson pane.
func Player(state PlayerState) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ansiColorNumber(colors.Cyan))).
		Padding(0, 1)
	if state.Width > 4 {
		box = box.Width(state.Width - 2)
	}

	statusColor := colors.Yellow
	status := state.Status
	if status == progress.StatusCompleted {
		statusColor = colors.Green
		status = completedCheckmark + " " + status
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(state.Title))
	b.WriteString("\n")
	b.WriteString(state.EmbedURL)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(statusColor))).Render(status))
	for _, v := range state.Lessons {
		marker := "  "
		if v.ID == state.Current {
			marker = activeTrackSymbol + " "
		}
		b.WriteString("\n")
		b.WriteString(marker + v.Title)
	}
	return box.Render(b.String())
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var help []string
	switch {
	case state.PlayerOpen:
		help = append(help, "m: mark completed", "ESC: close")
	case state.SearchMode:
		help = append(help, "ESC/Enter: done", state.SearchView)
	case state.TracksFocused:
		help = append(help, "j/k: move", "Enter: open track", "Tab: items")
	default:
		help = append(help, "j/k: move", "/: search", "l: level", "t: type", "Tab: tracks", "c: completed", "h: home", "Enter: open")
	}
	help = append(help, "q: quit")

	footer := helpStyle.Render(strings.Join(help, "  |  "))
	if state.Message != "" {
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow))).Render(state.Message) + "\n" + footer
	}
	return footer
}

// TrackPanelWidth returns the rendered sidebar width including its border.
func TrackPanelWidth() int {
	return trackPanelWidth + 1
}

func calculateTitleWidth(width int) int {
	w := width - typeWidth - levelWidth - metaWidth - spacesBetween
	if width == 0 || w < 10 {
		return defaultTitleWidth
	}
	return w
}

func cut(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width < 4 {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-3]) + "..."
}

func truncate(value string, width int) string {
	if width <= 0 || lipgloss.Width(value) <= width {
		return value
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(value)
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
