package logio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options configure a logger built by New.
type Options struct {
	// Level sets the minimum level written to Stderr.
	Level slog.Leveler

	// Stderr receives human readable text logs, defaulting to os.Stderr.
	Stderr io.Writer

	// Trace, if non-nil, additionally receives every record, down to debug
	// level, as JSON lines.
	Trace io.Writer
}

// New builds a logger that fans records out to a text handler, and to a
// JSON trace handler if one is configured.
func New(opts Options) *slog.Logger {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	if opts.Trace != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.Trace, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Logf returns a printf-style logging function that writes messages to
// logger at the given level. Formatting is skipped when no handler is
// enabled for level.
func Logf(logger *slog.Logger, level slog.Level) func(mess string, args ...interface{}) {
	ctx := context.Background()
	return func(mess string, args ...interface{}) {
		if !logger.Enabled(ctx, level) {
			return
		}
		if len(args) > 0 {
			mess = fmt.Sprintf(mess, args...)
		}
		logger.Log(ctx, level, mess)
	}
}
