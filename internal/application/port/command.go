package port

import "context"

// CommandResult is the outcome of a finished external command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner spawns external programs synchronously.
// A non-zero exit is reported through CommandResult, not as an error;
// the error is reserved for commands that could not be started at all.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
	// LookPath reports whether name resolves to an executable.
	LookPath(name string) (string, error)
}
