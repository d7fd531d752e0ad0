package port

import (
	"context"

	"github.com/rs/zerolog"
)

// LoggerFromContext resolves the logger carried by ctx.
// Use cases take this instead of importing the logging package directly.
type LoggerFromContext func(ctx context.Context) *zerolog.Logger
