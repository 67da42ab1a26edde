package format

import (
	"fmt"
	"io"

	"github.com/rlacademy/rl-academy/internal/app"
	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/rlacademy/rl-academy/internal/navigation"
	"github.com/rlacademy/rl-academy/internal/progress"
)

// FormatPlayback writes the player title, embed URL and lesson status.
func FormatPlayback(pb navigation.Playback, status string, writer io.Writer) error {
	statusColor := colors.Yellow
	if status == progress.StatusCompleted {
		statusColor = colors.Green
	}
	_, err := fmt.Fprintf(writer, "%s%s%s\n%s\nStatus: %s%s%s\nKey: %s\n",
		colors.Cyan, pb.Title(), colors.Reset,
		pb.Lesson.EmbedURL(),
		statusColor, status, colors.Reset,
		pb.Key())
	return err
}

// FormatProgress writes the completed items followed by the completed keys.
func FormatProgress(items []catalog.Item, keys []progress.Key, writer io.Writer) error {
	if err := NewSimpleFormatter().FormatItems(app.TitleCompleted, items, writer); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(writer, "\n%sCompleted lessons (%d)%s\n", colors.Blue, len(keys), colors.Reset); err != nil {
		return err
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(writer, "  %s\n", k); err != nil {
			return err
		}
	}
	return nil
}
