package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/tinybrowser/internal/cli"
	"github.com/bnema/tinybrowser/internal/cli/model"
	"github.com/bnema/tinybrowser/internal/infrastructure/config"
	"github.com/bnema/tinybrowser/internal/logging"
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Interactive address bar",
	Long: `Open an interactive address bar in the terminal.

The input is classified while you type: the scheme and host are
highlighted and the target URL is previewed. Enter "opens" the page,
which fills the back/forward history and shows a simulated load.
Editing the config file applies the change immediately.`,
	RunE: runBar,
}

func init() {
	rootCmd.AddCommand(barCmd)
}

func runBar(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	// stderr belongs to the TUI while it runs
	ctx := logging.WithContext(app.Ctx(), zerolog.Nop())

	m := model.NewBarModel(ctx, app.Theme, app.Services)
	p := tea.NewProgram(m)

	mgr := app.ConfigManager
	mgr.SetLogger(zerolog.Nop())
	mgr.OnConfigChange(func(cfg *config.Config) {
		services, buildErr := cli.NewServices(cfg)
		p.Send(model.ConfigReloadedMsg{Services: services, Path: mgr.ConfigPath(), Err: buildErr})
	})
	mgr.OnReloadError(func(err error) {
		p.Send(model.ConfigReloadedMsg{Path: mgr.ConfigPath(), Err: err})
	})
	if err := mgr.Watch(); err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("config hot reload disabled")
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run address bar: %w", err)
	}
	return nil
}
