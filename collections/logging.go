package collections

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(NewLogger(os.Stderr, slog.LevelInfo))
}

// NewLogger returns a tint-formatted logger writing to w at the given level.
// It is what the package logs through until [SetLogger] is called.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetLogger replaces the package logger. Passing nil restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = NewLogger(os.Stderr, slog.LevelInfo)
	}
	logger.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger { return logger.Load() }

func logFailure(op string, err error) {
	Logger().Debug("chain step failed", "op", op, "error", err)
}

func dump(kind string, n int, rendered string) {
	Logger().Info("dump", "type", kind, "len", n, "items", rendered)
}
