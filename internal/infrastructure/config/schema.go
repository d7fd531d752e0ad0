// Package config loads, validates and watches the tinybrowser configuration.
package config

import (
	"github.com/bnema/tinybrowser/internal/domain/url"
	"github.com/bnema/tinybrowser/internal/infrastructure/search"
)

// Config is the full configuration file.
type Config struct {
	// Address controls how typed text is turned into URLs.
	Address AddressConfig `mapstructure:"address" toml:"address" json:"address"`
	// Search lists the search engines and which one handles plain queries.
	Search SearchConfig `mapstructure:"search" toml:"search" json:"search"`
	// Logging controls log verbosity and format.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// AddressConfig holds address-bar normalization settings.
type AddressConfig struct {
	// DefaultScheme is prepended to scheme-less URLs (e.g., "https").
	DefaultScheme string `mapstructure:"default_scheme" toml:"default_scheme" json:"default_scheme" jsonschema:"default=https,example=https,example=http"`
	// DefaultDomain hosts non-domain text passed to normalization; empty disables it.
	DefaultDomain string `mapstructure:"default_domain" toml:"default_domain" json:"default_domain"`
	// ExtraSchemes are recognised on top of http, https, ftp and file (e.g., "about:").
	ExtraSchemes []string `mapstructure:"extra_schemes" toml:"extra_schemes" json:"extra_schemes"`
}

// SearchConfig holds the search engines.
type SearchConfig struct {
	// DefaultEngine is the key of the engine used for plain queries.
	DefaultEngine string `mapstructure:"default_engine" toml:"default_engine" json:"default_engine" jsonschema:"default=ddg"`
	// Engines maps a bang key ("g" for "!g query") to an engine.
	Engines map[string]SearchEngine `mapstructure:"engines" toml:"engines" json:"engines"`
}

// SearchEngine describes one URL-template search engine.
type SearchEngine struct {
	// Name is the display name.
	Name string `mapstructure:"name" toml:"name" json:"name"`
	// URL is the results page template; %s is replaced by the escaped query.
	URL string `mapstructure:"url" toml:"url" json:"url" jsonschema:"pattern=%s"`
	// Home is the engine's main page; defaults to the template's host.
	Home string `mapstructure:"home" toml:"home,omitempty" json:"home,omitempty"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is console or json.
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// Classifier returns a URL classifier that also recognises ExtraSchemes.
// Entries that do not parse are skipped; validation reports them on load.
func (c *Config) Classifier() *url.Classifier {
	extra := make([]url.Scheme, 0, len(c.Address.ExtraSchemes))
	for _, spec := range c.Address.ExtraSchemes {
		if s, ok := url.ParseScheme(spec); ok {
			extra = append(extra, s)
		}
	}
	return url.NewClassifier(extra...)
}

// EngineSpecs converts the configured engines for search.NewRegistry.
func (c *Config) EngineSpecs() map[string]search.EngineSpec {
	specs := make(map[string]search.EngineSpec, len(c.Search.Engines))
	for key, engine := range c.Search.Engines {
		specs[key] = search.EngineSpec{Name: engine.Name, URL: engine.URL, Home: engine.Home}
	}
	return specs
}

// SearchRegistry builds the configured search engines.
func (c *Config) SearchRegistry() (*search.Registry, error) {
	return search.NewRegistry(c.Search.DefaultEngine, c.EngineSpecs())
}
