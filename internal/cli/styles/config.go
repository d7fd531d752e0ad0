package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigPath renders the config file location.
func (r *ConfigRenderer) RenderConfigPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := r.theme.SuccessStyle.Render(IconCheck)
	if !exists {
		status = r.theme.WarningStyle.Render(IconWarning + " not created yet")
	}

	return fmt.Sprintf(
		"\n  %s Config %s %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderReloaded renders the notice shown after a hot reload.
func (r *ConfigRenderer) RenderReloaded(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconReload),
		r.theme.Normal.Render("config reloaded"),
		r.theme.Subtle.Render(path),
	)
}

// RenderReloadFailed renders the notice shown when an edited config could not
// be loaded and the previous one stays in effect.
func (r *ConfigRenderer) RenderReloadFailed(path string, err error) string {
	return fmt.Sprintf("%s %s %s\n   %s",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Normal.Render("config not applied, keeping previous settings"),
		r.theme.Subtle.Render(path),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
