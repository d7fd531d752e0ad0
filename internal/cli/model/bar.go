package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tinybrowser/internal/application/usecase"
	"github.com/bnema/tinybrowser/internal/cli"
	"github.com/bnema/tinybrowser/internal/cli/styles"
	"github.com/bnema/tinybrowser/internal/domain/entity"
)

const (
	progressTick = 80 * time.Millisecond
	progressStep = 0.15
	progressBar  = 30
)

var errNoServices = errors.New("no services built from config")

// ConfigReloadedMsg delivers services rebuilt after the config file changed,
// or the error that kept the previous config in effect.
type ConfigReloadedMsg struct {
	Services *cli.Services
	Path     string
	Err      error
}

// progressTickMsg advances the simulated load identified by loadID.
type progressTickMsg struct {
	loadID int
}

// BarModel is the Bubble Tea model for the interactive address bar.
type BarModel struct {
	// UI components
	input textinput.Model
	help  help.Model
	keys  styles.AddressBarKeyMap

	// State
	classification entity.Classification
	preview        *entity.Resolution
	previewErr     error
	suggestions    []usecase.BangSuggestion
	notice         string
	width          int

	// Dependencies
	ctx         context.Context
	bar         *usecase.AddressBarUseCase
	nav         *navigator
	theme       *styles.Theme
	renderer    *styles.ClassifyRenderer
	cfgRenderer *styles.ConfigRenderer
}

// NewBarModel creates a new address bar model.
func NewBarModel(ctx context.Context, theme *styles.Theme, services *cli.Services) BarModel {
	input := styles.NewURLInput(theme)
	input.Focus()

	bar := usecase.NewAddressBarUseCase(nil, services.Classifier)
	nav := newNavigator(ctx, services, bar)
	bar.SetDelegate(nav)
	bar.BeginEditing()

	return BarModel{
		input:       input,
		help:        styles.NewStyledHelp(theme),
		keys:        styles.DefaultAddressBarKeyMap(),
		width:       80,
		ctx:         ctx,
		bar:         bar,
		nav:         nav,
		theme:       theme,
		renderer:    styles.NewClassifyRenderer(theme),
		cfgRenderer: styles.NewConfigRenderer(theme),
	}
}

// Init implements tea.Model.
func (m BarModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m BarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case progressTickMsg:
		return m.handleTick(msg)

	case ConfigReloadedMsg:
		if msg.Err != nil || msg.Services == nil {
			err := msg.Err
			if err == nil {
				err = errNoServices
			}
			m.notice = m.cfgRenderer.RenderReloadFailed(msg.Path, err)
			return m, nil
		}
		m.nav.services = msg.Services
		m.bar.SetClassifier(msg.Services.Classifier)
		m.notice = m.cfgRenderer.RenderReloaded(msg.Path)
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m BarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	loadID := m.nav.loadID

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.bar.Submit(m.ctx, m.input.Value()) {
			m.input.SetValue("")
			m.refresh()
		}
		m.notice = ""

	case key.Matches(msg, m.keys.Complete):
		if len(m.suggestions) > 0 {
			m.input.SetValue("!" + m.suggestions[0].Key + " ")
			m.input.CursorEnd()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Action):
		m.bar.TapActionButton(m.ctx)

	case key.Matches(msg, m.keys.Prev):
		m.bar.TapNavigationButton(m.ctx, entity.NavigationButtonPrev)

	case key.Matches(msg, m.keys.Next):
		m.bar.TapNavigationButton(m.ctx, entity.NavigationButtonNext)

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.bar.CancelEditing()
		m.refresh()

	default:
		m.bar.BeginEditing()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refresh()
		return m, cmd
	}

	if m.nav.loadID != loadID && m.bar.State().Loading == entity.LoadingStateLoading {
		return m, tick(m.nav.loadID)
	}
	return m, nil
}

func (m BarModel) handleTick(msg progressTickMsg) (tea.Model, tea.Cmd) {
	state := m.bar.State()
	if msg.loadID != m.nav.loadID || state.Loading != entity.LoadingStateLoading {
		return m, nil
	}

	next := entity.NewLoadingProgress(state.Progress.Float64() + progressStep)
	if next.IsComplete() {
		m.nav.finish()
		return m, nil
	}
	m.bar.SetLoadingProgress(next.Float64())
	return m, tick(msg.loadID)
}

func tick(loadID int) tea.Cmd {
	return tea.Tick(progressTick, func(time.Time) tea.Msg {
		return progressTickMsg{loadID: loadID}
	})
}

// refresh reclassifies the input and updates the preview and bang suggestions.
func (m *BarModel) refresh() {
	services := m.nav.services
	text := m.input.Value()

	m.classification = services.ClassifyUC.Classify(m.ctx, text)
	m.suggestions = nil
	m.preview, m.previewErr = nil, nil

	if strings.TrimSpace(text) == "" {
		return
	}

	if strings.HasPrefix(text, "!") && !strings.Contains(text, " ") {
		m.suggestions = services.ShortcutsUC.FilterBangs(m.ctx, usecase.FilterBangsInput{Query: text}).Suggestions
	}

	out, err := services.ResolveUC.Execute(m.ctx, usecase.ResolveInput{Text: text})
	if err != nil {
		m.previewErr = err
		return
	}
	m.preview = &out.Resolution
}

// View implements tea.Model.
func (m BarModel) View() string {
	t := m.theme
	state := m.bar.State()

	sections := []string{
		m.renderToolbar(state),
		t.InputBox(m.input.View(), state.Editing == entity.EditingStateEditing),
	}

	if m.input.Value() != "" {
		sections = append(sections, " "+m.renderer.RenderBadge(m.classification)+" "+t.HighlightAddress(m.classification))
	}
	if m.preview != nil {
		sections = append(sections, " "+m.renderer.RenderResolution(*m.preview))
	}
	if m.previewErr != nil {
		sections = append(sections, " "+m.renderer.RenderError(m.previewErr))
	}
	if len(m.suggestions) > 0 {
		sections = append(sections, m.renderSuggestions())
	}
	if m.nav.lastErr != nil {
		sections = append(sections, " "+m.renderer.RenderError(m.nav.lastErr))
	}
	if m.notice != "" {
		sections = append(sections, " "+m.notice)
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BarModel) renderToolbar(state entity.AddressBarState) string {
	t := m.theme
	button := func(label string, enabled bool) string {
		if enabled {
			return t.Highlight.Render(label)
		}
		return t.Subtle.Render(label)
	}

	action := styles.IconReload
	if state.Loading == entity.LoadingStateLoading {
		action = styles.IconX
	}

	parts := []string{
		button("←", state.PrevEnabled),
		button("→", state.NextEnabled),
		t.Normal.Render(action),
		t.Title.Render(m.bar.DisplayText()),
	}
	if state.Loading == entity.LoadingStateLoading {
		parts = append(parts, renderProgress(t, state.Progress))
	}
	return " " + strings.Join(parts, " ")
}

func (m BarModel) renderSuggestions() string {
	lines := make([]string, 0, len(m.suggestions))
	for _, s := range m.suggestions {
		lines = append(lines, fmt.Sprintf("   %s %s",
			m.theme.HelpKey.Render("!"+s.Key),
			m.theme.HelpDesc.Render(s.Description),
		))
	}
	return strings.Join(lines, "\n")
}

func renderProgress(t *styles.Theme, p entity.LoadingProgress) string {
	filled := int(p.Float64() * progressBar)
	return t.Highlight.Render(strings.Repeat("━", filled)) +
		t.Subtle.Render(strings.Repeat("─", progressBar-filled)) +
		t.Subtle.Render(fmt.Sprintf(" %d%%", p.Percentage()))
}

// Classification returns the live classification of the input.
func (m BarModel) Classification() entity.Classification {
	return m.classification
}

// Preview returns where the current input would lead, if anywhere.
func (m BarModel) Preview() (entity.Resolution, bool) {
	if m.preview == nil {
		return entity.Resolution{}, false
	}
	return *m.preview, true
}

// State returns the address bar state.
func (m BarModel) State() entity.AddressBarState {
	return m.bar.State()
}

// Ensure interface compliance.
var _ tea.Model = (*BarModel)(nil)
