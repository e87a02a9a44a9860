// Package cmd provides Cobra CLI commands for theme-control.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/theme-control/internal/application/usecase"
	"github.com/bnema/theme-control/internal/cli"
	"github.com/bnema/theme-control/internal/cli/styles"
	"github.com/bnema/theme-control/internal/domain/build"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/logging"
)

var (
	app          *cli.App
	buildInfo    build.Info
	updateThemes bool
	quiet        bool
	rootCmd      = &cobra.Command{
		Use:   "theme-control <appearance> <theme>",
		Short: "Switch the light/dark theme of your terminal tools in one go",
		Long: `theme-control applies one color theme to every configured application.

Supported combinations: ` + theme.Usage() + `

Applications are themed in a fixed order: macos, bat, delta, helix, kitty,
browser. Only apps listed in apps.enabled of the config file are touched.

Examples:
  theme-control dark nord
  theme-control light rosepine
  theme-control dark rosepine --update-themes   # reinstall bat themes`,
		Args:              validateApplyArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: initApp,
		RunE:              runApply,
	}
)

func init() {
	rootCmd.Flags().BoolVar(&updateThemes, "update-themes", false, "overwrite installed theme files")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print a summary")
}

// initApp loads config and logger. Commands that must work without a valid
// config file skip it.
func initApp(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "help", "completion", "gen-docs", "version", "path", "init", "schema", "install-host":
		return nil
	}

	var err error
	app, err = cli.NewApp("")
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	// Set build info from main.go
	app.BuildInfo = buildInfo
	return nil
}

func validateApplyArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: theme-control <appearance> <theme>\nvalid combinations: %s", theme.Usage())
	}
	return nil
}

func runApply(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}

	uc := usecase.NewApplyThemeUseCase(app.GOOS, app.Adapters()...)
	out, err := uc.Execute(app.Ctx(), usecase.ApplyThemeInput{
		Appearance:        args[0],
		Theme:             args[1],
		ForceUpdateThemes: updateThemes,
	})
	if err != nil {
		return err
	}

	if !quiet {
		applied := make([]string, 0, len(out.Adapters))
		for _, name := range out.Adapters {
			if app.Config.Apps.IsEnabled(name) {
				applied = append(applied, name)
			}
		}
		renderer := styles.NewApplyRenderer(styles.NewThemeForSelection(out.Selection))
		fmt.Println(renderer.RenderApplied(out.Selection, applied))
	}
	return nil
}

// Execute runs the root command. Errors go through the logger's error
// channel and exit with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger := logging.NewFromEnv()
		if app != nil {
			logger = *app.Logger()
		}
		logger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
