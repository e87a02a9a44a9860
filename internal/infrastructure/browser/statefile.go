// Package browser pushes theme changes to the browser extension: a state
// file for late readers, a unix socket for live helpers, and the native
// messaging manifest that lets the browser start the relay host.
package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// StateFile implements port.ThemeStateStore on a JSON file.
type StateFile struct {
	path string
}

// NewStateFile creates a store backed by path.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// Path implements port.ThemeStateStore.
func (s *StateFile) Path() string {
	return s.path
}

// Save implements port.ThemeStateStore. The file is replaced via rename so
// watchers never observe a partial write.
func (s *StateFile) Save(_ context.Context, state theme.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode theme state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write theme state: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod theme state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close theme state: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace theme state: %w", err)
	}
	return nil
}

// Load implements port.ThemeStateStore.
func (s *StateFile) Load(_ context.Context) (theme.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return theme.State{}, fmt.Errorf("%w: %s", port.ErrStateNotFound, s.path)
		}
		return theme.State{}, fmt.Errorf("failed to read theme state: %w", err)
	}
	return DecodeState(data)
}

// DecodeState parses and validates a serialized theme state.
func DecodeState(data []byte) (theme.State, error) {
	var state theme.State
	if err := json.Unmarshal(data, &state); err != nil {
		return theme.State{}, fmt.Errorf("failed to parse theme state: %w", err)
	}
	if err := state.Validate(); err != nil {
		return theme.State{}, err
	}
	return state, nil
}
