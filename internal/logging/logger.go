// Package logging builds the slog loggers shared by the chillmcp commands.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger on stderr at the given level. Stdout is spoken
// for in both modes (the session UI in chat, JSON-RPC on the stdio
// transport), so diagnostics must stay off it. Attrs logged under "error"
// are renamed to "err" so every failure lands on one key.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
