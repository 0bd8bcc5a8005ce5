// Package cli implements the pants command-line interface.
//
// The commands inspect single states, apply moves, enumerate the children of
// a path and run bounded breadth-first explorations that can be exported as
// JSON, DOT or SVG. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - show: print a state and the outcome of each move
//   - move: apply one named move
//   - children: list the children of a path in enumeration order
//   - explore: walk the reachable states breadth-first
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so library code can receive the same
// logger.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger writes leveled logs with a short wall-clock timestamp such as
// "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one step and logs its outcome with the elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) progress {
	return progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Explored 300 states (12ms)".
func (p progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
