// Package cli implements the worksheets command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Every
// worksheet kind has its own command; all of them write a PDF to a file
// named after the sheet title, or to standard output with -o -.
//
// # Commands
//
//   - bonds: number bond worksheets with optional dot and number line aids
//   - preview: one number bond diagram as SVG or PNG
//   - edit: interactive number bond editor with a live preview
//   - words: word grids from a list of words
//   - phonics: phonics sound sheets from the built-in sound table
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and worksheet events reported through
// pkg/observability are logged at debug level.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 12 words (4ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports worksheet and delivery events to a logger.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnConfigure(_ context.Context, tool string, adjusted bool, err error) {
	if err != nil {
		h.logger.Debug("configure failed", "tool", tool, "err", err)
		return
	}
	h.logger.Debug("configured", "tool", tool, "adjusted", adjusted)
}

func (h *logHooks) OnPreview(_ context.Context, kind string, d time.Duration, err error) {
	h.logger.Debug("preview", "kind", kind, "duration", d, "err", err)
}

func (h *logHooks) OnGenerateStart(_ context.Context, tool string, items int) {
	h.logger.Debug("generating", "tool", tool, "items", items)
}

func (h *logHooks) OnGenerateComplete(_ context.Context, tool string, pages int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generation failed", "tool", tool, "duration", d, "err", err)
		return
	}
	h.logger.Debug("generated", "tool", tool, "pages", pages, "duration", d)
}

func (h *logHooks) OnDeliver(_ context.Context, path string, size int, err error) {
	if path == stdoutPath {
		path = "stdout"
	}
	h.logger.Debug("delivered", "path", path, "bytes", size, "err", err)
}
