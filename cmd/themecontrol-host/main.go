// Package main is the native messaging host started by the browser. Stdout
// carries framed messages only, so logs go to a rotated file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/theme-control/internal/infrastructure/config"
	"github.com/bnema/theme-control/internal/logging"
	"github.com/bnema/theme-control/internal/relayhost"
)

const (
	logFileName   = "host.log"
	logMaxSizeMB  = 1
	logMaxBackups = 2
)

var watch bool

var rootCmd = &cobra.Command{
	Use:   "themecontrol-host [manifest-or-origin...]",
	Short: "Relay theme-control state to the browser extension",
	Long: `Native messaging host for the theme-control browser extension.

By default the host answers one request with the current theme and exits.
With --watch it keeps running and forwards every theme change until the
browser closes the connection.

Firefox passes the manifest path and extension id as arguments; they are
ignored.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&watch, "watch", false, "keep running and forward every theme change")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Config errors must not stop the host from answering; defaults apply.
	cfg := config.DefaultConfig()
	mgr, cfgErr := config.Load("")
	if cfgErr == nil {
		cfg = mgr.Get()
	}

	logger, cleanup := newHostLogger(cfg.LogLevel)
	defer cleanup()
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default config")
	}
	ctx = logging.WithContext(ctx, logger)

	logger.Debug().Bool("watch", watch).Msg("host started")
	err := relayhost.Run(ctx, relayhost.Options{
		Watch:      watch,
		StatePath:  cfg.Apps.Browser.StatePath,
		SocketPath: cfg.Apps.Browser.SocketPath,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
	})
	if err != nil {
		logger.Error().Err(err).Msg("host failed")
		return err
	}
	logger.Debug().Msg("host stopped")
	return nil
}

// newHostLogger writes to <config dir>/host.log, or stderr when the file
// cannot be opened.
func newHostLogger(level int) (zerolog.Logger, func()) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.LevelFromInt(level)
	logCfg.Format = "json"

	dir, err := config.GetConfigDir()
	if err != nil {
		return logging.New(logCfg), func() {}
	}
	rotator, err := logging.NewLogRotator(dir, logFileName, logMaxSizeMB, logMaxBackups)
	if err != nil {
		return logging.New(logCfg), func() {}
	}

	logCfg.Output = rotator
	return logging.New(logCfg), func() { _ = rotator.Close() }
}
