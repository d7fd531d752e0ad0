// Package search provides configuration-driven search engines.
package search

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/tinybrowser/internal/application/port"
)

// QueryPlaceholder marks where the escaped query goes in a URL template.
const QueryPlaceholder = "%s"

// ErrInvalidTemplate is returned for templates without a usable URL or placeholder.
var ErrInvalidTemplate = errors.New("invalid search url template")

// TemplateEngine builds search URLs by substituting the query into a template
// such as "https://duckduckgo.com/?q=%s".
type TemplateEngine struct {
	name     string
	template string
	mainPage *url.URL
}

var _ port.SearchEngine = (*TemplateEngine)(nil)

// NewTemplateEngine validates template and home and returns the engine.
// An empty home falls back to the template's scheme and host.
func NewTemplateEngine(name, template, home string) (*TemplateEngine, error) {
	template = strings.TrimSpace(template)
	if !strings.Contains(template, QueryPlaceholder) {
		return nil, fmt.Errorf("%w: %q has no %s placeholder", ErrInvalidTemplate, template, QueryPlaceholder)
	}

	base, err := url.Parse(strings.Replace(template, QueryPlaceholder, "", 1))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTemplate, template, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q must be an absolute URL", ErrInvalidTemplate, template)
	}

	mainPage := &url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/"}
	if home = strings.TrimSpace(home); home != "" {
		mainPage, err = url.Parse(home)
		if err != nil {
			return nil, fmt.Errorf("parse home page %q: %w", home, err)
		}
	}

	if name == "" {
		name = base.Host
	}

	return &TemplateEngine{
		name:     name,
		template: template,
		mainPage: mainPage,
	}, nil
}

// Name returns the engine's display name.
func (e *TemplateEngine) Name() string {
	return e.name
}

// MakeSearchURL returns the results page for text. The text is query-escaped.
func (e *TemplateEngine) MakeSearchURL(text string) (*url.URL, error) {
	raw := strings.Replace(e.template, QueryPlaceholder, url.QueryEscape(text), 1)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("build search url for %s: %w", e.name, err)
	}
	return u, nil
}

// MainPageURL returns a copy of the engine's home page.
func (e *TemplateEngine) MainPageURL() *url.URL {
	u := *e.mainPage
	return &u
}
