package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/lmittmann/tint"
	"github.com/rs/zerolog"
)

// New returns the logger used by binaries. Inside Kubernetes it writes JSON
// lines to stderr, otherwise human readable colored lines.
func New(verbose bool) *slog.Logger {
	return newLogger(os.Stderr, os.Getenv("KUBERNETES_SERVICE_HOST") != "", verbose)
}

// setupZerolog sets the package level knobs of zerolog and zerologr. The
// global max V-level admits debug records, loggers filter by their own level.
var setupZerolog = sync.OnceFunc(func() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	zerologr.SetMaxV(int(-slog.LevelDebug))
})

func newLogger(w io.Writer, kubernetes, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if kubernetes {
		// slog level L is logr V-level -L, which zerologr writes at zerolog level 1-V.
		zl := NewZerolog(w).Level(zerolog.Level(1 + int(level)))
		return slog.New(logr.ToSlogHandler(zerologr.New(&zl)))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02T15:04:05.999Z07:00",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}))
}

// NewZerolog returns a JSON zerolog logger with timestamps.
func NewZerolog(w io.Writer) *zerolog.Logger {
	setupZerolog()

	logger := zerolog.New(w).With().Timestamp().Logger()
	return &logger
}
