package main

import (
	"context"

	"github.com/rlacademy/rl-academy/cmd"
	"github.com/rlacademy/rl-academy/internal/format"
	"github.com/rlacademy/rl-academy/internal/navigation"
	"github.com/spf13/cobra"
)

type statusClient interface {
	LessonStatus(ctx context.Context, itemID, lessonID string) (navigation.Playback, string, error)
}

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(client statusClient) *cobra.Command {
	if client == nil {
		panic("NewStatusCmd: client dependency cannot be nil")
	}

	statusCmd := &cobra.Command{
		Use:   "status <item> [lesson]",
		Short: "Show whether a lesson is completed",
		Long:  `Show the completion status of a lesson. Without a lesson id the lesson the item opens to is used.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, lessonID := lessonArgs(args)
			pb, status, err := client.LessonStatus(cmd.Context(), itemID, lessonID)
			if err != nil {
				return err
			}
			return format.FormatPlayback(pb, status, cmd.OutOrStdout())
		},
	}
	return statusCmd
}

// lessonArgs splits "<item> [lesson]" arguments.
func lessonArgs(args []string) (itemID, lessonID string) {
	itemID = args[0]
	if len(args) > 1 {
		lessonID = args[1]
	}
	return itemID, lessonID
}

var statusCmd = NewStatusCmd(academyClient)

func init() {
	cmd.RootCmd.AddCommand(statusCmd)
}
