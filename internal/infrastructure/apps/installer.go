package apps

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bnema/theme-control/assets"
	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/logging"
)

// ThemeInstaller copies the bundled bat themes into a themes directory and
// rebuilds bat's cache when anything was written.
type ThemeInstaller struct {
	runner port.CommandRunner
	files  fs.FS
	dir    string
}

// NewThemeInstaller creates an installer for the embedded bat themes.
func NewThemeInstaller(runner port.CommandRunner) *ThemeInstaller {
	return &ThemeInstaller{
		runner: runner,
		files:  assets.BatThemes,
		dir:    assets.BatThemesDir,
	}
}

// Install writes each bundled theme into themesDir if it is missing, or
// unconditionally when force is set. Existing files are otherwise left
// untouched. It returns the number of files written.
func (i *ThemeInstaller) Install(ctx context.Context, themesDir string, force bool) (int, error) {
	log := logging.FromContext(ctx)

	entries, err := fs.ReadDir(i.files, i.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list bundled themes: %w", err)
	}

	if err := os.MkdirAll(themesDir, dirPerm); err != nil {
		return 0, fmt.Errorf("failed to create themes directory %s: %w", themesDir, err)
	}

	written := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		dest := filepath.Join(themesDir, entry.Name())

		if !force {
			if _, err := os.Stat(dest); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, fmt.Errorf("failed to stat %s: %w", dest, err)
			}
		}

		data, err := fs.ReadFile(i.files, path.Join(i.dir, entry.Name()))
		if err != nil {
			return written, fmt.Errorf("failed to read bundled theme %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(dest, data, filePerm); err != nil {
			return written, fmt.Errorf("failed to install theme %s: %w", dest, err)
		}
		log.Debug().Str("path", dest).Msg("installed theme")
		written++
	}

	if written == 0 {
		return 0, nil
	}

	i.rebuildCache(ctx)
	return written, nil
}

func (i *ThemeInstaller) rebuildCache(ctx context.Context) {
	log := logging.FromContext(ctx)

	if _, err := runCommand(ctx, i.runner, "bat", nil, "bat", "cache", "--build"); err != nil {
		log.Warn().Err(err).Msg("failed to rebuild bat cache")
		return
	}
	log.Info().Msg("rebuilt bat cache")
}
