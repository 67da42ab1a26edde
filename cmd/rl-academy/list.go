package main

import (
	"context"
	"fmt"

	"github.com/rlacademy/rl-academy/cmd"
	"github.com/rlacademy/rl-academy/internal/app"
	"github.com/rlacademy/rl-academy/internal/format"
	"github.com/spf13/cobra"
)

type listClient interface {
	Browse(ctx context.Context, state app.State) (app.View, error)
}

const listCommandLong = `List catalog items with search and filters.

USAGE:
    rl-academy list [OPTIONS]

OPTIONS:
    --search <text>      Match against title and tags
    --level <level>      Only items of this level
    --type <type>        Only items of this type: lesson, course, playlist
    --track <id>         List the items of a track in track order
    --completed          List items with at least one completed lesson
    --format=<format>    Output format: simple (default), table, json
    -h, --help           Show this help`

// ListOptions holds the list command flags.
type ListOptions struct {
	Search    string
	Level     string
	Type      string
	Track     string
	Completed bool
	Format    string
}

// State builds the browsing state the flags describe.
func (o ListOptions) State() app.State {
	state := app.Initial().SetSearch(o.Search)
	if o.Level != "" {
		state = state.SetLevel(o.Level)
	}
	if o.Type != "" {
		state = state.SetType(o.Type)
	}
	if o.Track != "" {
		state = state.SelectTrack(o.Track)
	}
	if o.Completed {
		state = state.ShowCompleted()
	}
	return state
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client listClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var opts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items with search and filters",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.Format); err != nil {
				return err
			}
			view, err := client.Browse(cmd.Context(), opts.State())
			if err != nil {
				return err
			}
			return format.NewFormatter(format.FormatterType(opts.Format)).FormatItems(view.Title, view.Items, cmd.OutOrStdout())
		},
	}

	listCmd.Flags().StringVar(&opts.Search, "search", "", "Match against title and tags")
	listCmd.Flags().StringVar(&opts.Level, "level", "", "Only items of this level")
	listCmd.Flags().StringVar(&opts.Type, "type", "", "Only items of this type: lesson, course, playlist")
	listCmd.Flags().StringVar(&opts.Track, "track", "", "List the items of a track in track order")
	listCmd.Flags().BoolVar(&opts.Completed, "completed", false, "List items with at least one completed lesson")
	listCmd.Flags().StringVar(&opts.Format, "format", string(format.FormatterTypeSimple), "Output format: simple (default), table, json")
	return listCmd
}

func validateFormat(f string) error {
	switch format.FormatterType(f) {
	case format.FormatterTypeSimple, format.FormatterTypeTable, format.FormatterTypeJSON:
		return nil
	}
	return fmt.Errorf("invalid format %q: expected simple, table or json", f)
}

var listCmd = NewListCmd(academyClient)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}
