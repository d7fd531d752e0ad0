package config

// Default configuration constants
const (
	defaultScheme       = "https"
	defaultSearchEngine = "ddg"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	logFormatJSON       = "json"
	configFileName      = "config"
	configFileType      = "toml"
	schemaFileName      = "config.schema.json"
	envPrefix           = "TINYBROWSER"
	dirPerm             = 0o755
	filePerm            = 0o644
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Address: AddressConfig{
			DefaultScheme: defaultScheme,
			DefaultDomain: "",
			ExtraSchemes:  []string{"about:"},
		},
		Search: SearchConfig{
			DefaultEngine: defaultSearchEngine,
			Engines: map[string]SearchEngine{
				"ddg": {
					Name: "DuckDuckGo",
					URL:  "https://duckduckgo.com/?q=%s",
					Home: "https://duckduckgo.com/",
				},
				"g": {
					Name: "Google",
					URL:  "https://www.google.com/search?q=%s",
				},
				"gh": {
					Name: "GitHub",
					URL:  "https://github.com/search?q=%s",
				},
				"w": {
					Name: "Wikipedia",
					URL:  "https://en.wikipedia.org/w/index.php?search=%s",
					Home: "https://en.wikipedia.org/",
				},
			},
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
