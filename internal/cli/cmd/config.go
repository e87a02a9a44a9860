package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/theme-control/internal/cli/styles"
	"github.com/bnema/theme-control/internal/infrastructure/config"
)

var (
	configForce     bool
	configSchemaDir string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, create and describe the theme-control config file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Long: `Print the config file path. TC_CONFIG_PATH overrides the default
$XDG_CONFIG_HOME/theme-control/config.toml location.`,
	Args: cobra.NoArgs,
	RunE: runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with all defaults",
	Long: `Write the default configuration to the config file path.

An existing file is left untouched unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file",
	Long:  `Load and validate the config file, listing settings that are ignored.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigCheck,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema describing config.toml, for editor completion.

With --output the schema is written to config.schema.json in that directory.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configCheckCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSchemaDir, "output", "o", "", "directory to write config.schema.json to")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	fmt.Println(configFile)
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())

	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}

	err = config.WriteDefault(configFile, configForce)
	if errors.Is(err, config.ErrConfigExists) {
		fmt.Println(renderer.RenderExists(configFile))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(renderer.RenderCreated(configFile))
	return nil
}

func runConfigCheck(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Print(renderer.RenderConfigInfo(app.Manager.ConfigFile(), app.Manager.FileFound()))
	fmt.Println(renderer.RenderUnknownKeys(app.Manager.UnknownKeys()))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaDir != "" {
		path, err := config.GenerateSchemaFile(configSchemaDir)
		if err != nil {
			return err
		}
		fmt.Println(styles.NewConfigRenderer(styles.NewTheme()).RenderSchemaWritten(path))
		return nil
	}

	data, err := config.JSONSchema()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}
