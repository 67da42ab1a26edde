package main

import (
	"github.com/rlacademy/rl-academy/cmd"
	"github.com/rlacademy/rl-academy/internal/tui/state"
	"github.com/spf13/cobra"
)

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client state.Academy) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the catalog interactively",
		Long: `Browse the catalog in an interactive terminal UI.

KEYS:
    j/k        Move
    /          Search title and tags
    l / t      Cycle level / type filter
    Tab        Focus the track list
    c          Recently completed
    h          Back to highlights
    Enter      Open item or track
    m          Mark the open lesson completed
    n / p      Next / previous lesson
    ESC        Close the lesson
    q          Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := state.NewModel(cmd.Context(), client)
			if err != nil {
				return err
			}
			return state.Run(model)
		},
	}
	return tuiCmd
}

var tuiCmd = NewTUICmd(academyClient)

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
}
