// Package cmd provides Cobra CLI commands for tinybrowser.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tinybrowser/internal/cli"
	"github.com/bnema/tinybrowser/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "tinybrowser",
		Short: "Address bar toolkit: tell URLs from search queries",
		Long: `tinybrowser - the address bar of a tiny browser, without the browser.

It decides whether typed text is a URL or a search query, locates the
scheme and host inside it, completes scheme-less addresses and routes
everything else to a configurable search engine.

Features:
  - URL classification with scheme and host ranges
  - Default scheme and default domain completion
  - Search engines and bang shortcuts (!g, !gh, ...) from the config file
  - An interactive terminal address bar with live highlighting

Configuration lives in $XDG_CONFIG_HOME/tinybrowser/config.toml and is
created with defaults on first run.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
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

// requireApp returns the app or an error when initialization was skipped.
func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
