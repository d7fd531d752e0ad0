package usecase

import (
	"context"
	"strings"

	"github.com/bnema/tinybrowser/internal/application/port"
	"github.com/bnema/tinybrowser/internal/logging"
)

// BangSuggestion represents a configured bang shortcut for display.
type BangSuggestion struct {
	Key         string
	Description string
}

// SearchShortcutsUseCase suggests and detects "!key" search shortcuts.
type SearchShortcutsUseCase struct {
	engines port.SearchEngineRegistry
}

// NewSearchShortcutsUseCase creates a new search shortcuts use case.
func NewSearchShortcutsUseCase(engines port.SearchEngineRegistry) *SearchShortcutsUseCase {
	return &SearchShortcutsUseCase{
		engines: engines,
	}
}

// FilterBangsInput contains parameters for filtering bang suggestions.
type FilterBangsInput struct {
	Query string // e.g., "!" or "!g" or "!g query"
}

// FilterBangsOutput contains filtered bang suggestions.
type FilterBangsOutput struct {
	Suggestions []BangSuggestion
}

// FilterBangs returns bang shortcuts matching the query prefix, sorted by key.
// Queries that do not start with "!" match nothing.
func (uc *SearchShortcutsUseCase) FilterBangs(ctx context.Context, input FilterBangsInput) *FilterBangsOutput {
	log := logging.FromContext(ctx)

	if !strings.HasPrefix(input.Query, "!") {
		return &FilterBangsOutput{}
	}

	prefix := strings.TrimPrefix(input.Query, "!")
	if idx := strings.Index(prefix, " "); idx >= 0 {
		prefix = prefix[:idx]
	}
	prefix = strings.ToLower(prefix)

	var suggestions []BangSuggestion
	for _, key := range uc.engines.Keys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		engine, ok := uc.engines.Lookup(key)
		if !ok {
			continue
		}
		suggestions = append(suggestions, BangSuggestion{
			Key:         key,
			Description: engine.Name(),
		})
	}

	log.Debug().
		Str("query", input.Query).
		Int("matches", len(suggestions)).
		Msg("filtered bang suggestions")

	return &FilterBangsOutput{Suggestions: suggestions}
}

// DetectBangKeyInput contains parameters for detecting a completed bang key.
type DetectBangKeyInput struct {
	Query string // e.g., "!gh query"
}

// DetectBangKeyOutput contains the detected bang key if found.
type DetectBangKeyOutput struct {
	Key         string // The matched key (empty if not found)
	Description string // Name of the matched engine
}

// DetectBangKey checks if the query contains a completed, known bang key.
// A completed bang key requires "!<key> " with a space after the key.
func (uc *SearchShortcutsUseCase) DetectBangKey(ctx context.Context, input DetectBangKeyInput) *DetectBangKeyOutput {
	spaceIdx := strings.Index(input.Query, " ")
	if !strings.HasPrefix(input.Query, "!") || spaceIdx <= 1 {
		return &DetectBangKeyOutput{}
	}

	key := strings.ToLower(input.Query[1:spaceIdx])
	engine, ok := uc.engines.Lookup(key)
	if !ok {
		return &DetectBangKeyOutput{}
	}

	logging.FromContext(ctx).Debug().
		Str("query", input.Query).
		Str("detected_key", key).
		Msg("detected bang key")

	return &DetectBangKeyOutput{
		Key:         key,
		Description: engine.Name(),
	}
}
