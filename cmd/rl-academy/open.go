package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rlacademy/rl-academy/cmd"
	"github.com/rlacademy/rl-academy/internal/format"
	"github.com/rlacademy/rl-academy/internal/navigation"
	"github.com/spf13/cobra"
)

type openClient interface {
	Open(ctx context.Context, itemID string) (navigation.Playback, string, error)
}

// NewOpenCmd creates the open command with explicit dependencies.
func NewOpenCmd(client openClient) *cobra.Command {
	if client == nil {
		panic("NewOpenCmd: client dependency cannot be nil")
	}

	openCmd := &cobra.Command{
		Use:   "open <item>",
		Short: "Show the lesson an item plays",
		Long: `Resolve an item into the lesson it plays and print the player URL and status.

A lesson plays itself. A course or playlist plays its first lesson.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, status, err := client.Open(cmd.Context(), args[0])
			if errors.Is(err, navigation.ErrNothingToPlay) {
				_, werr := fmt.Fprintln(cmd.OutOrStdout(), "Nothing to play")
				return werr
			}
			if err != nil {
				return err
			}
			return format.FormatPlayback(pb, status, cmd.OutOrStdout())
		},
	}
	return openCmd
}

var openCmd = NewOpenCmd(academyClient)

func init() {
	cmd.RootCmd.AddCommand(openCmd)
}
