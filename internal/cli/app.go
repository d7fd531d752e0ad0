// Package cli wires configuration, logging and use cases for the tinybrowser commands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/tinybrowser/internal/application/usecase"
	"github.com/bnema/tinybrowser/internal/cli/styles"
	"github.com/bnema/tinybrowser/internal/domain/build"
	"github.com/bnema/tinybrowser/internal/domain/url"
	"github.com/bnema/tinybrowser/internal/infrastructure/config"
	"github.com/bnema/tinybrowser/internal/infrastructure/search"
	"github.com/bnema/tinybrowser/internal/logging"
)

// Services holds everything built from one configuration snapshot.
// A config reload builds a fresh Services instead of mutating this one.
type Services struct {
	Classifier *url.Classifier
	Engines    *search.Registry
	Defaults   usecase.AddressDefaults

	ClassifyUC  *usecase.ClassifyUseCase
	ResolveUC   *usecase.ResolveAddressUseCase
	ShortcutsUC *usecase.SearchShortcutsUseCase
}

// NewServices builds the classifier, search engines and use cases for cfg.
func NewServices(cfg *config.Config) (*Services, error) {
	engines, err := cfg.SearchRegistry()
	if err != nil {
		return nil, fmt.Errorf("build search engines: %w", err)
	}

	classifier := cfg.Classifier()
	defaults := usecase.AddressDefaults{
		Scheme: cfg.Address.DefaultScheme,
		Domain: cfg.Address.DefaultDomain,
	}

	return &Services{
		Classifier:  classifier,
		Engines:     engines,
		Defaults:    defaults,
		ClassifyUC:  usecase.NewClassifyUseCase(classifier, defaults, logging.FromContext),
		ResolveUC:   usecase.NewResolveAddressUseCase(classifier, engines, defaults),
		ShortcutsUC: usecase.NewSearchShortcutsUseCase(engines),
	}, nil
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	ConfigErr     error
	Theme         *styles.Theme
	BuildInfo     build.Info
	Services      *Services

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
// An invalid config file falls back to defaults; ConfigErr keeps the reason.
func NewApp() (*App, error) {
	bootLogger := logging.NewFromEnv()

	mgr, err := config.NewManager(config.WithLogger(bootLogger))
	if err != nil {
		return nil, err
	}

	cfg, cfgErr := loadConfig(mgr, bootLogger)

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")

	services, err := NewServices(cfg)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("config", mgr.ConfigPath()).
		Int("schemes", len(services.Classifier.Schemes())).
		Strs("engines", services.Engines.Keys()).
		Str("default_engine", services.Engines.DefaultKey()).
		Msg("app initialized")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		ConfigErr:     cfgErr,
		Theme:         styles.NewTheme(),
		Services:      services,
		ctx:           ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration, returning defaults when the file is unusable.
func loadConfig(mgr *config.Manager, logger zerolog.Logger) (*config.Config, error) {
	if err := mgr.Load(); err != nil {
		logger.Warn().Err(err).Msg("using default configuration")
		return config.DefaultConfig(), err
	}
	return mgr.Get(), nil
}
