package entity

// ResolutionKind describes how address-bar text was turned into a URL.
type ResolutionKind string

const (
	// ResolutionNavigate opens the text itself as a URL.
	ResolutionNavigate ResolutionKind = "navigate"
	// ResolutionSearch sends the text to the default search engine.
	ResolutionSearch ResolutionKind = "search"
	// ResolutionShortcut sends the query of a "!key query" bang to that engine.
	ResolutionShortcut ResolutionKind = "shortcut"
	// ResolutionMainPage opens the default engine's home page for empty input.
	ResolutionMainPage ResolutionKind = "main_page"
)

// Resolution is the outcome of resolving address-bar text.
type Resolution struct {
	Kind   ResolutionKind `json:"kind"`
	URL    string         `json:"url"`
	Input  string         `json:"input"`
	Engine string         `json:"engine,omitempty"`
}

// IsSearch reports whether a search engine produced the URL.
func (r Resolution) IsSearch() bool {
	return r.Kind == ResolutionSearch || r.Kind == ResolutionShortcut
}

// Classification describes one piece of address-bar text.
type Classification struct {
	Input       string `json:"input"`
	IsURL       bool   `json:"is_url"`
	HasScheme   bool   `json:"has_scheme"`
	SchemeStart int    `json:"scheme_start"`
	SchemeLen   int    `json:"scheme_length"`
	Scheme      string `json:"scheme,omitempty"`
	HasHost     bool   `json:"has_host"`
	HostStart   int    `json:"host_start"`
	HostLen     int    `json:"host_length"`
	Host        string `json:"host,omitempty"`
	ASCIIHost   string `json:"ascii_host,omitempty"`
	Normalized  string `json:"normalized"`
}
