// Package execrunner runs external programs through os/exec.
package execrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/logging"
)

// Runner implements port.CommandRunner.
type Runner struct{}

// New creates a new command runner.
func New() *Runner {
	return &Runner{}
}

// Run executes name with args and waits for it to exit.
// No timeout is applied beyond ctx.
func (*Runner) Run(ctx context.Context, name string, args ...string) (port.CommandResult, error) {
	log := logging.FromContext(ctx)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := port.CommandResult{
		Stdout: stdout.String(),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, fmt.Errorf("failed to start %s: %w", name, err)
	}

	log.Debug().
		Str("cmd", name).
		Strs("args", args).
		Int("exit_code", result.ExitCode).
		Msg("command finished")

	return result, nil
}

// LookPath implements port.CommandRunner.
func (*Runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
