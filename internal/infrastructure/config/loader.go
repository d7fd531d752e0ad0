package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/tinybrowser/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	log       zerolog.Logger
	mu        sync.RWMutex
	callbacks []func(*Config)
	errorCbs  []func(error)
	watching  bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigDir loads config.toml from dir instead of the XDG location.
func WithConfigDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.configDir = dir
	}
}

// WithLogger sets the logger used for reload diagnostics.
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = logger
	}
}

// SetLogger replaces the logger used for reload diagnostics, e.g. to silence
// it while a terminal UI owns stderr.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = logger
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		log:       zerolog.Nop(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configDir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configDir = configDir
	}

	v := m.viper
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(m.configDir)

	// TINYBROWSER_ADDRESS_DEFAULT_SCHEME overrides address.default_scheme, etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", logging.EnvLogLevel); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", logging.EnvLogLevel, err)
	}
	if err := v.BindEnv("logging.format", logging.EnvLogFormat); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", logging.EnvLogFormat, err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", m.configDir, err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// reload re-reads the file viper already located (internal method, must be called with lock held for write).
func (m *Manager) reload() error {
	if m.viper.ConfigFileUsed() != "" {
		if err := m.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file at %s: %w", m.ConfigPath(), err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.ConfigPath(),
			err,
		)
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	config.Address.DefaultScheme = strings.ToLower(strings.TrimSpace(config.Address.DefaultScheme))
	if config.Address.DefaultScheme == "" {
		config.Address.DefaultScheme = defaultScheme
	}
	config.Address.DefaultDomain = strings.TrimSpace(config.Address.DefaultDomain)

	if len(config.Search.Engines) == 0 {
		config.Search.Engines = DefaultConfig().Search.Engines
	}
	config.Search.DefaultEngine = strings.ToLower(strings.TrimSpace(config.Search.DefaultEngine))
	if config.Search.DefaultEngine == "" {
		config.Search.DefaultEngine = defaultSearchEngine
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	switch strings.ToLower(config.Logging.Format) {
	case logFormatJSON:
		config.Logging.Format = logFormatJSON
	default:
		config.Logging.Format = defaultLogFormat
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Address.ExtraSchemes = append([]string(nil), m.config.Address.ExtraSchemes...)
	configCopy.Search.Engines = make(map[string]SearchEngine, len(m.config.Search.Engines))
	for k, v := range m.config.Search.Engines {
		configCopy.Search.Engines[k] = v
	}
	return &configCopy
}

// ConfigPath returns the config file in use, or where it would be created.
func (m *Manager) ConfigPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName+"."+configFileType)
}

// ConfigDir returns the directory holding the config file.
func (m *Manager) ConfigDir() string {
	return m.configDir
}

// createDefaultConfig writes the default config and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	path := filepath.Join(m.configDir, configFileName+"."+configFileType)
	if err := WriteConfig(DefaultConfig(), path); err != nil {
		return err
	}
	if err := WriteSchemaFile(m.configDir); err != nil {
		m.log.Warn().Err(err).Msg("failed to write config schema")
	}

	m.log.Info().Str("path", path).Msg("created default configuration file")
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("address.default_scheme", defaults.Address.DefaultScheme)
	m.viper.SetDefault("address.default_domain", defaults.Address.DefaultDomain)
	m.viper.SetDefault("address.extra_schemes", defaults.Address.ExtraSchemes)

	// Engines have no viper default: maps would merge and a user could never
	// remove a built-in engine. normalizeConfig fills them in when absent.
	m.viper.SetDefault("search.default_engine", defaults.Search.DefaultEngine)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
