package main

import (
	"context"
	"fmt"

	"github.com/rlacademy/rl-academy/cmd"
	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/rlacademy/rl-academy/internal/navigation"
	"github.com/spf13/cobra"
)

type doneClient interface {
	MarkDone(ctx context.Context, itemID, lessonID string) (navigation.Playback, error)
}

// NewDoneCmd creates the done command with explicit dependencies.
func NewDoneCmd(client doneClient) *cobra.Command {
	if client == nil {
		panic("NewDoneCmd: client dependency cannot be nil")
	}

	doneCmd := &cobra.Command{
		Use:   "done <item> [lesson]",
		Short: "Mark a lesson as completed",
		Long: `Mark a lesson as completed and save progress.

Without a lesson id the lesson the item opens to is marked. Marking a
completed lesson again is harmless.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, lessonID := lessonArgs(args)
			pb, err := client.MarkDone(cmd.Context(), itemID, lessonID)
			if err != nil {
				return fmt.Errorf("mark completed: %w", err)
			}
			colors.Success("Marked as completed: " + pb.Title())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pb.Key())
			return err
		},
	}
	return doneCmd
}

var doneCmd = NewDoneCmd(academyClient)

func init() {
	cmd.RootCmd.AddCommand(doneCmd)
}
