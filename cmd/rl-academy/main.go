package main

import (
	"os"

	"github.com/rlacademy/rl-academy/cmd"
	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/rlacademy/rl-academy/internal/logging"
)

func main() {
	os.Exit(run(cmd.Execute))
}

// run executes the command tree and returns the process exit code.
func run(execute func() error) int {
	defer func() {
		if err := academyClient.Close(); err != nil {
			logging.Warn("closing progress store failed", "error", err)
		}
		_ = logging.ShutdownGlobal()
	}()

	if err := execute(); err != nil {
		logging.Error("command failed", "error", err)
		colors.Error(err.Error())
		return 1
	}
	return 0
}
