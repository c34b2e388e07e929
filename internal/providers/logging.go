package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/pokedex-service/internal/logging"
)

// logProvider writes a provider-tagged entry, preferring the logger carried by ctx.
func logProvider(ctx context.Context, fallback *slog.Logger, level slog.Level, provider, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil || !logger.Enabled(ctx, level) {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
