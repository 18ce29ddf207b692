package logging

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

var (
	StdoutLogger  = slog.New(slog.NewTextHandler(os.Stdout, nil))
	DiscardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// NewStdoutLogger builds a text logger that drops records below level
// (slog levels: -4 debug, 0 info, 4 warn, 8 error).
func NewStdoutLogger(level int) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(level)}))
}
