package apps

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/theme-control/internal/application/port"
)

// CommandError describes an external command that failed to start or exited non-zero.
type CommandError struct {
	App      string
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.App, e.Command, e.Err)
	}
	msg := fmt.Sprintf("%s: %s exited with code %d", e.App, e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func newCommandError(app, name string, args []string, res port.CommandResult, err error) *CommandError {
	return &CommandError{
		App:      app,
		Command:  strings.Join(append([]string{name}, args...), " "),
		ExitCode: res.ExitCode,
		Stderr:   res.Stderr,
		Err:      err,
	}
}

// runCommand executes a command and converts spawn failures and non-zero
// exits into a *CommandError. okCodes lists extra exit codes treated as success.
func runCommand(
	ctx context.Context,
	runner port.CommandRunner,
	app string,
	okCodes []int,
	name string,
	args ...string,
) (port.CommandResult, error) {
	res, err := runner.Run(ctx, name, args...)
	if err != nil {
		return res, newCommandError(app, name, args, res, err)
	}
	if res.ExitCode != 0 && !slices.Contains(okCodes, res.ExitCode) {
		return res, newCommandError(app, name, args, res, nil)
	}
	return res, nil
}
