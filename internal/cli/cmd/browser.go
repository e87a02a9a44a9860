package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/theme-control/internal/cli/styles"
	"github.com/bnema/theme-control/internal/infrastructure/browser"
)

var (
	browserHostPath string
	browserForce    bool
)

var browserCmd = &cobra.Command{
	Use:   "browser",
	Short: "Set up the browser extension bridge",
}

var browserInstallHostCmd = &cobra.Command{
	Use:   "install-host",
	Short: "Install the native messaging manifest for Firefox",
	Long: `Register themecontrol-host as a Firefox native messaging host.

The manifest is written to the per-user NativeMessagingHosts directory:
  Linux  ~/.mozilla/native-messaging-hosts/themecontrol.json
  macOS  ~/Library/Application Support/Mozilla/NativeMessagingHosts/themecontrol.json

By default the host binary is expected next to theme-control.`,
	Args: cobra.NoArgs,
	RunE: runBrowserInstallHost,
}

func init() {
	rootCmd.AddCommand(browserCmd)
	browserCmd.AddCommand(browserInstallHostCmd)
	browserInstallHostCmd.Flags().StringVar(&browserHostPath, "host-path", "", "absolute path of the themecontrol-host binary")
	browserInstallHostCmd.Flags().BoolVarP(&browserForce, "force", "f", false, "overwrite an existing manifest")
}

func runBrowserInstallHost(_ *cobra.Command, _ []string) error {
	hostPath, err := resolveHostPath(browserHostPath)
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	dir, err := browser.ManifestDir(runtime.GOOS, home)
	if err != nil {
		return err
	}

	res, err := browser.InstallManifest(browser.NewManifest(hostPath), dir, browserForce)
	if err != nil {
		return err
	}

	renderer := styles.NewBrowserRenderer(styles.NewTheme())
	fmt.Println(renderer.RenderManifest(res.Path, hostPath, res.Written))
	return nil
}

// resolveHostPath defaults to the host binary next to the running executable.
func resolveHostPath(flagValue string) (string, error) {
	if flagValue != "" {
		abs, err := filepath.Abs(flagValue)
		if err != nil {
			return "", fmt.Errorf("resolve host path: %w", err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), browser.HostBinary), nil
}
