// Package cmd holds the root command shared by the rl-academy subcommands.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rlacademy/rl-academy/internal/version"
	"github.com/spf13/cobra"
)

const description = "Browse the RL Academy catalog, play lessons and track your progress."

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "rl-academy",
	Short:         description,
	Long:          description,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{
	"list",
	"tracks",
	"open",
	"status",
	"done",
	"progress",
	"tui",
	"help",
	"version",
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s", cmd.Long, cmd.UsageString())
			return
		}
		PrintHelp(cmd, cmd.OutOrStdout())
	})
}

// PrintHelp writes the top-level help text listing the known commands.
func PrintHelp(root *cobra.Command, w io.Writer) {
	var lines []string
	for _, name := range commandOrder {
		for _, c := range root.Commands() {
			if c.Name() == name {
				lines = append(lines, fmt.Sprintf("    %-20s %s", c.Use, c.Short))
				break
			}
		}
	}

	_, _ = fmt.Fprintf(w, `rl-academy v%s

%s

USAGE:
    rl-academy [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, root.Version, description, strings.Join(lines, "\n"))
}
