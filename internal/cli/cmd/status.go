package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/application/usecase"
	"github.com/bnema/theme-control/internal/cli/styles"
	"github.com/bnema/theme-control/internal/infrastructure/colorscheme"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the applied theme and the system appearance",
	Long: `Display the last applied theme (from the browser state file), the
appearance reported by the operating system, the enabled apps and the
config file in use.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	store := app.StateStore()
	resolver := colorscheme.NewDefaultResolver(app.Runner, app.GOOS)
	uc := usecase.NewStatusUseCase(store, resolver, app.Config.Apps.Enabled)
	out := uc.Execute(app.Ctx())

	view := styles.StatusView{
		State:        out.State,
		StatePath:    store.Path(),
		System:       out.System,
		SystemSource: out.SystemSource,
		EnabledApps:  out.EnabledApps,
		ConfigFile:   app.Manager.ConfigFile(),
		ConfigFound:  app.Manager.FileFound(),
	}
	if out.StateError != nil && !errors.Is(out.StateError, port.ErrStateNotFound) {
		view.StateError = out.StateError
	}

	theme := app.Theme
	if out.State != nil {
		theme = styles.NewThemeForSelection(out.State.Selection())
	}
	fmt.Println(styles.NewStatusRenderer(theme).Render(view))
	return nil
}
