package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateEngine_Validation(t *testing.T) {
	tests := []struct {
		name     string
		template string
		home     string
		wantErr  error
	}{
		{name: "missing placeholder", template: "https://duckduckgo.com/", wantErr: ErrInvalidTemplate},
		{name: "relative template", template: "/search?q=%s", wantErr: ErrInvalidTemplate},
		{name: "empty template", template: "", wantErr: ErrInvalidTemplate},
		{name: "bad home", template: "https://duckduckgo.com/?q=%s", home: "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTemplateEngine("x", tt.template, tt.home)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestTemplateEngine_MakeSearchURL(t *testing.T) {
	engine, err := NewTemplateEngine("DuckDuckGo", "https://duckduckgo.com/?q=%s", "")
	require.NoError(t, err)

	tests := []struct {
		text string
		want string
	}{
		{"golang", "https://duckduckgo.com/?q=golang"},
		{"best pizza near me", "https://duckduckgo.com/?q=best+pizza+near+me"},
		{"a&b=c", "https://duckduckgo.com/?q=a%26b%3Dc"},
		{"", "https://duckduckgo.com/?q="},
	}

	for _, tt := range tests {
		u, err := engine.MakeSearchURL(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, u.String())
		assert.Equal(t, tt.text, u.Query().Get("q"))
	}
}

func TestTemplateEngine_MainPageURL(t *testing.T) {
	derived, err := NewTemplateEngine("", "https://www.google.com/search?q=%s", "")
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/", derived.MainPageURL().String())
	assert.Equal(t, "www.google.com", derived.Name())

	configured, err := NewTemplateEngine("GitHub", "https://github.com/search?q=%s", "https://github.com/explore")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/explore", configured.MainPageURL().String())

	// callers get a copy
	configured.MainPageURL().Path = "/mutated"
	assert.Equal(t, "https://github.com/explore", configured.MainPageURL().String())
}

func TestRegistry(t *testing.T) {
	reg, err := NewRegistry("DDG", map[string]EngineSpec{
		"ddg": {Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q=%s"},
		"G":   {Name: "Google", URL: "https://www.google.com/search?q=%s"},
	})
	require.NoError(t, err)

	assert.Equal(t, "DuckDuckGo", reg.Default().Name())
	assert.Equal(t, "ddg", reg.DefaultKey())
	assert.Equal(t, []string{"ddg", "g"}, reg.Keys())

	g, ok := reg.Lookup("g")
	require.True(t, ok)
	assert.Equal(t, "Google", g.Name())

	_, ok = reg.Lookup("bing")
	assert.False(t, ok)
}

func TestNewRegistry_Errors(t *testing.T) {
	_, err := NewRegistry("ddg", nil)
	assert.Error(t, err)

	_, err = NewRegistry("g", map[string]EngineSpec{
		"ddg": {URL: "https://duckduckgo.com/?q=%s"},
	})
	assert.ErrorContains(t, err, `default search engine "g"`)

	_, err = NewRegistry("ddg", map[string]EngineSpec{
		"ddg": {URL: "https://duckduckgo.com/"},
	})
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}
