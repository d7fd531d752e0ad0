package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/tinybrowser/internal/domain/url"
	"github.com/bnema/tinybrowser/internal/domain/validation"
	"github.com/bnema/tinybrowser/internal/infrastructure/search"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAddress(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateAddress(config *Config) []string {
	var validationErrors []string

	if _, ok := url.ParseScheme(config.Address.DefaultScheme); !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("address.default_scheme %q is not a valid scheme", config.Address.DefaultScheme))
	}
	if strings.ContainsAny(config.Address.DefaultDomain, " \t\n") {
		validationErrors = append(validationErrors, "address.default_domain must not contain whitespace")
	}
	for i, spec := range config.Address.ExtraSchemes {
		if _, ok := url.ParseScheme(spec); !ok {
			validationErrors = append(validationErrors,
				fmt.Sprintf("address.extra_schemes[%d] %q is not a valid scheme (expected e.g. \"about:\" or \"tb://\")", i, spec))
		}
	}
	return validationErrors
}

func validateSearch(config *Config) []string {
	var validationErrors []string

	if _, ok := config.Search.Engines[config.Search.DefaultEngine]; !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("search.default_engine %q is not defined in search.engines", config.Search.DefaultEngine))
	}

	keys := make([]string, 0, len(config.Search.Engines))
	for key := range config.Search.Engines {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		engine := config.Search.Engines[key]
		for _, msg := range validation.ValidateEngineKey(key) {
			validationErrors = append(validationErrors, fmt.Sprintf("search.engines key %q: %s", key, msg))
		}
		for _, msg := range validation.ValidateEngineName(engine.Name) {
			validationErrors = append(validationErrors, fmt.Sprintf("search.engines.%s.name: %s", key, msg))
		}
		if _, err := search.NewTemplateEngine(engine.Name, engine.URL, engine.Home); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("search.engines.%s: %v", key, err))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		return nil
	default:
		return []string{fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error", config.Logging.Level)}
	}
}
