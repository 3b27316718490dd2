// Package logging builds the process logger. Every record carries the
// session_id of the current run so the stages of one invocation can be
// correlated.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Options configure the logger.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // text|json
}

// New returns a logger writing to w with a fresh session id attached, plus
// the id itself.
func New(w io.Writer, opt Options) (*slog.Logger, string) {
	id := uuid.NewString()
	ho := &slog.HandlerOptions{Level: ParseLevel(opt.Level)}
	var h slog.Handler
	if strings.EqualFold(opt.Format, "json") {
		h = slog.NewJSONHandler(w, ho)
	} else {
		h = slog.NewTextHandler(w, ho)
	}
	return slog.New(h).With(slog.String("session_id", id)), id
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
