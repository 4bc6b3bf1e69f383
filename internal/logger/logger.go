// Package logger builds the slog.Logger used by the paintmix command.
//
// Console output goes through tint (colored only when the writer is a
// terminal); --log-json switches to slog's JSON handler for machine readers.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Config selects level and encoding.
type Config struct {
	// Out receives log records; nil means os.Stderr.
	Out io.Writer

	// Debug lowers the level from Info to Debug and adds source locations.
	Debug bool

	// JSON selects slog.JSONHandler instead of the tint console handler.
	JSON bool
}

// New returns a logger for cfg. It never fails.
func New(cfg Config) *slog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:     level,
			AddSource: cfg.Debug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
					a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		}))
	}

	return slog.New(tint.NewHandler(out, &tint.Options{
		Level:      level,
		AddSource:  cfg.Debug,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(out),
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
