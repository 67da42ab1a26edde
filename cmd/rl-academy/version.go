package main

import (
	"fmt"

	"github.com/rlacademy/rl-academy/cmd"
	"github.com/rlacademy/rl-academy/internal/version"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
}

type buildVersion struct{}

func (buildVersion) Version() string { return version.Full() }

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of rl-academy.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), client.Version())
			return err
		},
	}
}

var versionCmd = NewVersionCmd(buildVersion{})

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
