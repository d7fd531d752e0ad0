package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tinybrowser/internal/application/port"
	"github.com/bnema/tinybrowser/internal/domain/entity"
	"github.com/bnema/tinybrowser/internal/domain/url"
	"github.com/bnema/tinybrowser/internal/logging"
)

// AddressDefaults holds the scheme and domain used to complete typed text.
type AddressDefaults struct {
	Scheme string
	Domain string
}

// ResolveAddressUseCase turns address-bar text into the URL to open.
type ResolveAddressUseCase struct {
	classifier *url.Classifier
	engines    port.SearchEngineRegistry
	defaults   AddressDefaults
}

// NewResolveAddressUseCase creates a new resolver.
// A nil classifier uses url.Default().
func NewResolveAddressUseCase(
	classifier *url.Classifier,
	engines port.SearchEngineRegistry,
	defaults AddressDefaults,
) *ResolveAddressUseCase {
	if classifier == nil {
		classifier = url.Default()
	}
	return &ResolveAddressUseCase{
		classifier: classifier,
		engines:    engines,
		defaults:   defaults,
	}
}

// ResolveInput contains the text typed by the user.
type ResolveInput struct {
	Text string
}

// ResolveOutput contains the resolution.
type ResolveOutput struct {
	Resolution entity.Resolution
}

// Execute resolves input.Text in this order: empty text opens the default
// engine's main page, a "!key query" bang with a known key searches that
// engine, URL-shaped text and local hosts are navigated to, anything else is
// searched.
func (uc *ResolveAddressUseCase) Execute(ctx context.Context, input ResolveInput) (*ResolveOutput, error) {
	text := strings.TrimSpace(input.Text)
	ctx = logging.WithInput(ctx, text)
	log := logging.FromContext(ctx)

	if text == "" {
		engine := uc.engines.Default()
		log.Debug().Str("engine", engine.Name()).Msg("empty input, opening main page")
		return &ResolveOutput{Resolution: entity.Resolution{
			Kind:   entity.ResolutionMainPage,
			URL:    engine.MainPageURL().String(),
			Input:  text,
			Engine: engine.Name(),
		}}, nil
	}

	if key, query, found := url.ParseBangShortcut(text); found {
		if engine, ok := uc.engines.Lookup(key); ok {
			log.Debug().Str("bang", key).Str("engine", engine.Name()).Msg("resolved bang shortcut")
			return uc.search(entity.ResolutionShortcut, engine, text, query)
		}
		log.Debug().Str("bang", key).Msg("unknown bang, falling back to default search")
	}

	if uc.classifier.LooksLikeURL(text) {
		target := uc.classifier.Normalize(text, uc.defaults.Scheme, uc.defaults.Domain)
		log.Debug().Str("url", target).Msg("navigating to url")
		return &ResolveOutput{Resolution: entity.Resolution{
			Kind:  entity.ResolutionNavigate,
			URL:   target,
			Input: text,
		}}, nil
	}

	engine := uc.engines.Default()
	log.Debug().Str("engine", engine.Name()).Msg("searching with default engine")
	return uc.search(entity.ResolutionSearch, engine, text, text)
}

func (uc *ResolveAddressUseCase) search(
	kind entity.ResolutionKind,
	engine port.SearchEngine,
	text, query string,
) (*ResolveOutput, error) {
	target, err := engine.MakeSearchURL(query)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", engine.Name(), err)
	}
	return &ResolveOutput{Resolution: entity.Resolution{
		Kind:   kind,
		URL:    target.String(),
		Input:  text,
		Engine: engine.Name(),
	}}, nil
}
