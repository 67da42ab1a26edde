package main

import (
	"github.com/rlacademy/rl-academy/cmd"
	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show this help message",
	Long:  `Show this help message.`,
	RunE: func(c *cobra.Command, args []string) error {
		cmd.PrintHelp(c.Root(), c.OutOrStdout())
		return nil
	},
}

func init() {
	cmd.RootCmd.SetHelpCommand(helpCmd)
}
