package kprocessor

import (
	"context"
	"log/slog"
)

// LogAction logs every record at info level. A nil logger falls back to
// slog.Default().
func LogAction[K, V any](logger *slog.Logger, label string) Action[K, V] {
	if logger == nil {
		logger = slog.Default()
	}
	return ActionFunc[K, V](func(k K, v V) error {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "record",
			slog.String("label", label),
			slog.Any("key", k),
			slog.Any("value", v),
		)
		return nil
	})
}
