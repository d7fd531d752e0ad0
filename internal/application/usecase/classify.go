package usecase

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tinybrowser/internal/application/port"
	"github.com/bnema/tinybrowser/internal/domain/entity"
	"github.com/bnema/tinybrowser/internal/domain/url"
	"github.com/bnema/tinybrowser/internal/logging"
)

// ClassifyUseCase reports what the classifier sees in address-bar text.
type ClassifyUseCase struct {
	classifier *url.Classifier
	defaults   AddressDefaults
	logger     port.LoggerFromContext
}

// NewClassifyUseCase creates a new classify use case.
// A nil classifier uses url.Default(); a nil logger resolver uses logging.FromContext.
func NewClassifyUseCase(classifier *url.Classifier, defaults AddressDefaults, logger port.LoggerFromContext) *ClassifyUseCase {
	if classifier == nil {
		classifier = url.Default()
	}
	if logger == nil {
		logger = logging.FromContext
	}
	return &ClassifyUseCase{
		classifier: classifier,
		defaults:   defaults,
		logger:     logger,
	}
}

// Classify locates the scheme and host of text and, for URLs and local
// hosts, the normalized form and punycode host.
func (uc *ClassifyUseCase) Classify(ctx context.Context, text string) entity.Classification {
	c := entity.Classification{
		Input: text,
		IsURL: uc.classifier.IsURL(text),
	}

	if r, ok := uc.classifier.SchemeRange(text); ok {
		c.HasScheme = true
		c.SchemeStart, c.SchemeLen = r.Start, r.Length
		c.Scheme = r.Slice(text)
	}
	if r, ok := uc.classifier.HostRange(text); ok {
		c.HasHost = true
		c.HostStart, c.HostLen = r.Start, r.Length
		c.Host = r.Slice(text)
	}

	if uc.classifier.LooksLikeURL(text) {
		c.Normalized = uc.classifier.Normalize(text, uc.defaults.Scheme, uc.defaults.Domain)
		if c.HasHost {
			ascii, err := url.AuthorityToASCII(c.Host)
			if err != nil {
				uc.logger(ctx).Debug().Err(err).Str("host", c.Host).Msg("host has no IDNA form")
			} else {
				c.ASCIIHost = ascii
			}
		}
	}

	return c
}

// ClassifyBatch classifies texts concurrently. Results keep the order of
// texts. It stops early and returns the context error when ctx is done.
func (uc *ClassifyUseCase) ClassifyBatch(ctx context.Context, texts []string) ([]entity.Classification, error) {
	log := uc.logger(ctx)
	results := make([]entity.Classification, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, text := range texts {
		i, text := i, text
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.Classify(gctx, text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classify batch: %w", err)
	}

	log.Debug().Int("count", len(texts)).Msg("classified batch")
	return results, nil
}
