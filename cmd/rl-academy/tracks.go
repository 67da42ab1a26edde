package main

import (
	"context"

	"github.com/rlacademy/rl-academy/cmd"
	"github.com/rlacademy/rl-academy/internal/catalog"
	"github.com/rlacademy/rl-academy/internal/format"
	"github.com/spf13/cobra"
)

type tracksClient interface {
	Tracks(ctx context.Context) ([]catalog.Track, error)
}

// NewTracksCmd creates the tracks command with explicit dependencies.
func NewTracksCmd(client tracksClient) *cobra.Command {
	if client == nil {
		panic("NewTracksCmd: client dependency cannot be nil")
	}

	var outputFormat string
	tracksCmd := &cobra.Command{
		Use:   "tracks",
		Short: "List learning tracks",
		Long:  `List the curated learning tracks in catalog order. Use "list --track <id>" to see a track's items.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(outputFormat); err != nil {
				return err
			}
			tracks, err := client.Tracks(cmd.Context())
			if err != nil {
				return err
			}
			return format.NewFormatter(format.FormatterType(outputFormat)).FormatTracks(tracks, cmd.OutOrStdout())
		},
	}
	tracksCmd.Flags().StringVar(&outputFormat, "format", string(format.FormatterTypeSimple), "Output format: simple (default), table, json")
	return tracksCmd
}

var tracksCmd = NewTracksCmd(academyClient)

func init() {
	cmd.RootCmd.AddCommand(tracksCmd)
}
