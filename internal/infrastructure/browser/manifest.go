package browser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// HostName is the native messaging host name the extension connects to.
	HostName = "themecontrol"
	// ExtensionID is the Firefox extension allowed to talk to the host.
	ExtensionID = "themecontrol@ext"
	// HostBinary is the relay host executable name.
	HostBinary = "themecontrol-host"
)

// ErrUnsupportedManifestOS is returned for platforms without a known manifest location.
var ErrUnsupportedManifestOS = errors.New("no native messaging manifest location for this OS")

// Manifest is Firefox's native messaging host manifest.
type Manifest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Path              string   `json:"path"`
	Type              string   `json:"type"`
	AllowedExtensions []string `json:"allowed_extensions"`
}

// NewManifest describes the relay host installed at hostPath.
func NewManifest(hostPath string) Manifest {
	return Manifest{
		Name:              HostName,
		Description:       "Relays theme-control theme changes to the browser extension",
		Path:              hostPath,
		Type:              "stdio",
		AllowedExtensions: []string{ExtensionID},
	}
}

// ManifestDir returns Firefox's per-user NativeMessagingHosts directory.
func ManifestDir(goos, home string) (string, error) {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Mozilla", "NativeMessagingHosts"), nil
	case "linux":
		return filepath.Join(home, ".mozilla", "native-messaging-hosts"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedManifestOS, goos)
	}
}

// InstallResult reports what InstallManifest did.
type InstallResult struct {
	Path    string
	Written bool
}

// InstallManifest writes the manifest into dir. An existing manifest is kept
// unless force is set.
func InstallManifest(m Manifest, dir string, force bool) (InstallResult, error) {
	path := filepath.Join(dir, m.Name+".json")
	result := InstallResult{Path: path}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return result, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return result, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return result, fmt.Errorf("failed to create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return result, fmt.Errorf("failed to write manifest: %w", err)
	}

	result.Written = true
	return result, nil
}
