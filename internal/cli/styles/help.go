package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

// AddressBarKeyMap defines keybindings for the interactive address bar.
type AddressBarKeyMap struct {
	Submit   key.Binding
	Complete key.Binding
	Action   key.Binding
	Prev     key.Binding
	Next     key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k AddressBarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Action, k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k AddressBarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Complete, k.Clear},
		{k.Action, k.Prev, k.Next},
		{k.Help, k.Quit},
	}
}

// DefaultAddressBarKeyMap returns the default address bar keybindings.
func DefaultAddressBarKeyMap() AddressBarKeyMap {
	return AddressBarKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete bang"),
		),
		Action: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload/stop"),
		),
		Prev: key.NewBinding(
			key.WithKeys("alt+left", "ctrl+b"),
			key.WithHelp("ctrl+b", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("alt+right", "ctrl+f"),
			key.WithHelp("ctrl+f", "forward"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
