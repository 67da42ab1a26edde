// Package report delivers user-facing notices to the active presentation:
// the console for CLI commands or an in-memory buffer for the TUI footer.
package report

import (
	"github.com/rlacademy/rl-academy/internal/colors"
)

// Reporter receives user-facing notices.
type Reporter interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console sink used by Console.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// colorsOutput adapts the colors package to ColorOutput.
type colorsOutput struct{}

func (colorsOutput) Error(msgs ...string)   { colors.Error(msgs...) }
func (colorsOutput) Warning(msgs ...string) { colors.Warning(msgs...) }
func (colorsOutput) Info(msgs ...string)    { colors.Info(msgs...) }
func (colorsOutput) Success(msgs ...string) { colors.Success(msgs...) }

// ConsoleReporter prints notices to stdout/stderr.
type ConsoleReporter struct {
	out ColorOutput
}

var _ Reporter = (*ConsoleReporter)(nil)

// NewConsole creates a reporter writing to out.
func NewConsole(out ColorOutput) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Console returns a reporter printing through the colors package.
func Console() *ConsoleReporter {
	return NewConsole(colorsOutput{})
}

func (r *ConsoleReporter) Error(msg string)   { r.out.Error(msg) }
func (r *ConsoleReporter) Warning(msg string) { r.out.Warning(msg) }
func (r *ConsoleReporter) Info(msg string)    { r.out.Info(msg) }
func (r *ConsoleReporter) Success(msg string) { r.out.Success(msg) }
