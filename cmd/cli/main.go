package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ameliabryce/bouquetry/cmd/cli/commands"
	"github.com/ameliabryce/bouquetry/internal/config"
	"github.com/ameliabryce/bouquetry/pkg/utils/logging"
)

var (
	verbose    bool
	configPath string
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bouquetry",
		Short: "Bouquetry CLI - Compose bouquets from available flower stock",
		Long: `A CLI tool for allocating a finite flower inventory to competing bouquet
designs. Designs needing scarce species are served first; designs that
cannot be completed release their stock for the rest.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output on the console")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (default: bouquetry_config.yaml in cwd or home)")

	// Add all commands
	rootCmd.AddCommand(commands.ComposeCmd(appRef()))
	rootCmd.AddCommand(commands.DemoCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, creating the empty shell that
// initApp fills in before any command runs
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up the logger and configuration
func initApp() error {
	var err error

	app = appRef()
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.Bool("verbose", verbose))

	// Load configuration; the config file is optional unless given by flag
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		app.Logger.Debug("Configuration loaded", zap.String("path", configPath))
		return nil
	}

	app.Cfg, err = config.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load config: %w", err)
		}
		app.Logger.Debug("No config file found, using defaults")
		app.Cfg = &config.Config{}
	} else {
		app.Logger.Debug("Configuration loaded successfully")
	}

	return nil
}
