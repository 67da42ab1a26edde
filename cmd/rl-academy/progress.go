package main

import (
	"context"

	"github.com/rlacademy/rl-academy/cmd"
	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/format"
	"github.com/rlacademy/rl-academy/internal/progress"
	"github.com/spf13/cobra"
)

type progressClient interface {
	Completed(ctx context.Context) ([]catalog.Item, []progress.Key, error)
}

// NewProgressCmd creates the progress command with explicit dependencies.
func NewProgressCmd(client progressClient) *cobra.Command {
	if client == nil {
		panic("NewProgressCmd: client dependency cannot be nil")
	}

	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Show completed items and lessons",
		Long:  `Show the items with at least one completed lesson, followed by every completed lesson key.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, keys, err := client.Completed(cmd.Context())
			if err != nil {
				return err
			}
			return format.FormatProgress(items, keys, cmd.OutOrStdout())
		},
	}
	return progressCmd
}

var progressCmd = NewProgressCmd(academyClient)

func init() {
	cmd.RootCmd.AddCommand(progressCmd)
}
