package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/tinybrowser/internal/application/port"
)

// EngineSpec describes one engine as written in the configuration.
type EngineSpec struct {
	Name string
	URL  string
	Home string
}

// Registry holds the configured engines keyed by their bang key.
type Registry struct {
	defaultKey string
	engines    map[string]*TemplateEngine
}

var _ port.SearchEngineRegistry = (*Registry)(nil)

// NewRegistry builds every engine in specs. defaultKey must name one of them.
// Keys are case-insensitive.
func NewRegistry(defaultKey string, specs map[string]EngineSpec) (*Registry, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("no search engines configured")
	}

	engines := make(map[string]*TemplateEngine, len(specs))
	for key, spec := range specs {
		engine, err := NewTemplateEngine(spec.Name, spec.URL, spec.Home)
		if err != nil {
			return nil, fmt.Errorf("search engine %q: %w", key, err)
		}
		engines[strings.ToLower(key)] = engine
	}

	defaultKey = strings.ToLower(defaultKey)
	if _, ok := engines[defaultKey]; !ok {
		return nil, fmt.Errorf("default search engine %q is not configured", defaultKey)
	}

	return &Registry{defaultKey: defaultKey, engines: engines}, nil
}

// Default returns the engine used for plain queries.
func (r *Registry) Default() port.SearchEngine {
	return r.engines[r.defaultKey]
}

// DefaultKey returns the key of the default engine.
func (r *Registry) DefaultKey() string {
	return r.defaultKey
}

// Lookup returns the engine bound to key.
func (r *Registry) Lookup(key string) (port.SearchEngine, bool) {
	engine, ok := r.engines[strings.ToLower(key)]
	if !ok {
		return nil, false
	}
	return engine, true
}

// Keys returns the configured keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.engines))
	for k := range r.engines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
