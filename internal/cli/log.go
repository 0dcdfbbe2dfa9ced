// Package cli implements the pathgrid command-line interface.
//
// # Commands
//
//   - path: compute the shortest path between two nodes
//   - maze: carve a maze from the configured grid and report its path
//   - describe: dump node data
//   - render: export the current frame as DOT or SVG
//   - play: interactive terminal view with mouse selection
//   - sweep: carve many mazes concurrently and report path statistics
//   - config: print the effective configuration as TOML
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through context.Context and is handed to the scene, which logs
// endpoint changes and path results at debug level.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the command logger: output to w, records below level
// dropped, wall-clock stamps to the hundredth of a second.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// timer measures one long step of a command, such as a carve or an SVG
// render, and reports it as a single info record.
type timer struct {
	logger *log.Logger
	step   string
	begin  time.Time
}

// startTimer starts timing step on l.
func startTimer(l *log.Logger, step string) timer {
	return timer{logger: l, step: step, begin: time.Now()}
}

// stop logs "<step> done" with the key-value pairs kv and an "elapsed"
// field rounded to the millisecond.
func (t timer) stop(kv ...any) {
	kv = append(kv, "elapsed", time.Since(t.begin).Round(time.Millisecond))
	t.logger.Info(t.step+" done", kv...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, falling back
// to log.Default() outside a command run.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
