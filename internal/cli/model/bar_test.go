package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tinybrowser/internal/cli"
	"github.com/bnema/tinybrowser/internal/cli/styles"
	"github.com/bnema/tinybrowser/internal/domain/entity"
	"github.com/bnema/tinybrowser/internal/infrastructure/config"
)

func newTestBar(t *testing.T) BarModel {
	t.Helper()
	services, err := cli.NewServices(config.DefaultConfig())
	require.NoError(t, err)
	return NewBarModel(context.Background(), styles.NewTheme(), services)
}

func typeText(m BarModel, text string) BarModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(BarModel)
}

func press(m BarModel, keyType tea.KeyType) (BarModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return next.(BarModel), cmd
}

// finishLoad feeds progress ticks until the simulated load completes.
func finishLoad(t *testing.T, m BarModel) BarModel {
	t.Helper()
	for i := 0; i < 20; i++ {
		if m.State().Loading != entity.LoadingStateLoading {
			return m
		}
		next, _ := m.Update(progressTickMsg{loadID: m.nav.loadID})
		m = next.(BarModel)
	}
	t.Fatal("load never finished")
	return m
}

func TestBarModel_LiveClassification(t *testing.T) {
	m := newTestBar(t)

	m = typeText(m, "example.com/docs")
	c := m.Classification()
	assert.True(t, c.IsURL)
	assert.Equal(t, "example.com", c.Host)

	preview, ok := m.Preview()
	require.True(t, ok)
	assert.Equal(t, entity.ResolutionNavigate, preview.Kind)
	assert.Equal(t, "https://example.com/docs", preview.URL)

	m, _ = press(m, tea.KeyCtrlU)
	_, ok = m.Preview()
	assert.False(t, ok)
	assert.Empty(t, m.input.Value())
}

func TestBarModel_BangCompletion(t *testing.T) {
	m := newTestBar(t)

	m = typeText(m, "!g")
	require.NotEmpty(t, m.suggestions)
	assert.Equal(t, "g", m.suggestions[0].Key)
	assert.Contains(t, m.View(), "!gh")

	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, "!g ", m.input.Value())
	assert.Empty(t, m.suggestions)
}

func TestBarModel_SubmitNavigateAndHistory(t *testing.T) {
	m := newTestBar(t)

	m = typeText(m, "example.com")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd, "a load should schedule progress ticks")

	state := m.State()
	assert.Equal(t, entity.EditingStateView, state.Editing)
	assert.Equal(t, entity.LoadingStateLoading, state.Loading)
	assert.Equal(t, "https://example.com", state.URLString)
	assert.Empty(t, m.input.Value())

	m = finishLoad(t, m)
	assert.True(t, m.State().Progress.IsComplete())
	assert.Equal(t, "example.com", m.bar.DisplayText())

	m = typeText(m, "golang tutorials")
	m, _ = press(m, tea.KeyEnter)
	m = finishLoad(t, m)
	assert.Equal(t, "https://duckduckgo.com/?q=golang+tutorials", m.State().URLString)
	assert.Equal(t, "DuckDuckGo: golang tutorials", m.bar.DisplayText())
	assert.True(t, m.State().PrevEnabled)
	assert.False(t, m.State().NextEnabled)

	m, _ = press(m, tea.KeyCtrlB)
	assert.Equal(t, "https://example.com", m.State().URLString)
	assert.False(t, m.State().PrevEnabled)
	assert.True(t, m.State().NextEnabled)

	m, _ = press(m, tea.KeyCtrlF)
	assert.Equal(t, "https://duckduckgo.com/?q=golang+tutorials", m.State().URLString)
}

func TestBarModel_ActionButtonCancelsAndReloads(t *testing.T) {
	m := newTestBar(t)

	m = typeText(m, "example.com")
	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, entity.LoadingStateLoading, m.State().Loading)

	// cancel
	m, cmd := press(m, tea.KeyCtrlR)
	assert.Nil(t, cmd)
	assert.Equal(t, entity.LoadingStateNotLoading, m.State().Loading)

	// stale ticks are ignored
	next, cmd := m.Update(progressTickMsg{loadID: m.nav.loadID - 1})
	m = next.(BarModel)
	assert.Nil(t, cmd)

	// reload
	m, cmd = press(m, tea.KeyCtrlR)
	assert.NotNil(t, cmd)
	assert.Equal(t, entity.LoadingStateLoading, m.State().Loading)
}

func TestBarModel_ConfigReload(t *testing.T) {
	m := newTestBar(t)

	cfg := config.DefaultConfig()
	cfg.Search.DefaultEngine = "g"
	services, err := cli.NewServices(cfg)
	require.NoError(t, err)

	next, _ := m.Update(ConfigReloadedMsg{Services: services, Path: "/tmp/config.toml"})
	m = next.(BarModel)
	assert.Contains(t, m.View(), "config reloaded")

	m = typeText(m, "hello world")
	preview, ok := m.Preview()
	require.True(t, ok)
	assert.Equal(t, "Google", preview.Engine)
}

func TestBarModel_ConfigReloadUpdatesSchemes(t *testing.T) {
	m := newTestBar(t)
	m.bar.SetURLString("tb://home/settings")
	m.bar.CancelEditing()
	assert.Equal(t, "tb:", m.bar.DisplayText())

	cfg := config.DefaultConfig()
	cfg.Address.ExtraSchemes = append(cfg.Address.ExtraSchemes, "tb://")
	services, err := cli.NewServices(cfg)
	require.NoError(t, err)

	next, _ := m.Update(ConfigReloadedMsg{Services: services, Path: "/tmp/config.toml"})
	m = next.(BarModel)
	assert.Equal(t, "home", m.bar.DisplayText())
}

func TestBarModel_ConfigReloadFailureKeepsServices(t *testing.T) {
	m := newTestBar(t)

	next, _ := m.Update(ConfigReloadedMsg{
		Path: "/tmp/config.toml",
		Err:  errors.New(`search.default_engine "missing" is not configured`),
	})
	m = next.(BarModel)

	view := m.View()
	assert.Contains(t, view, "config not applied")
	assert.Contains(t, view, "missing")

	m = typeText(m, "hello world")
	preview, ok := m.Preview()
	require.True(t, ok)
	assert.Equal(t, "DuckDuckGo", preview.Engine)
}

func TestBarModel_Quit(t *testing.T) {
	m := newTestBar(t)
	_, cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
