package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rlacademy/rl-academy/internal/navigation"
)

// lessonCompletedMsg is sent when a mark-completed request finishes.
type lessonCompletedMsg struct {
	playback navigation.Playback
	status   string
	err      error
}

// errorMsg carries an error to show in the footer.
type errorMsg struct {
	err error
}

// markDoneCmd persists a completion off the update loop.
func (m *Model) markDoneCmd(pb navigation.Playback) tea.Cmd {
	academy := m.academy
	ctx := m.ctx
	return func() tea.Msg {
		done, err := academy.MarkDone(ctx, pb.Item.ID, pb.Lesson.ID)
		if err != nil {
			return lessonCompletedMsg{playback: pb, err: err}
		}
		_, status, err := academy.LessonStatus(ctx, done.Item.ID, done.Lesson.ID)
		if err != nil {
			return errorMsg{err: err}
		}
		return lessonCompletedMsg{playback: done, status: status}
	}
}
