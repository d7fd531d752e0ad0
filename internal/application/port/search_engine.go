package port

import "net/url"

// SearchEngine builds URLs for one search provider.
// The address resolver picks it when typed text is not a URL.
type SearchEngine interface {
	// Name is the human readable provider name (e.g., "DuckDuckGo").
	Name() string
	// MakeSearchURL returns the results page for text.
	MakeSearchURL(text string) (*url.URL, error)
	// MainPageURL returns the provider's home page.
	MainPageURL() *url.URL
}

// SearchEngineRegistry resolves engines by bang key.
type SearchEngineRegistry interface {
	// Default returns the engine used for plain queries.
	Default() SearchEngine
	// Lookup returns the engine bound to a bang key such as "g" in "!g query".
	Lookup(key string) (SearchEngine, bool)
	// Keys returns every bang key, sorted.
	Keys() []string
}
