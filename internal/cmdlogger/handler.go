// Package cmdlogger provides the slog handler used by the radix command:
// bare messages, informational output on stdout and problems on stderr.
package cmdlogger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

type Handler struct {
	mu         sync.Mutex
	stdout     io.Writer
	stderr     io.Writer
	hasErrored bool
	level      slog.Leveler
}

var _ slog.Handler = &Handler{}

func New(stdout, stderr io.Writer) *Handler {
	return &Handler{
		stdout: stdout,
		stderr: stderr,
		level:  slog.LevelInfo,
	}
}

func (c *Handler) SetLevel(level slog.Leveler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.level = level
}

func (c *Handler) writer(level slog.Level) io.Writer {
	if level >= slog.LevelWarn {
		return c.stderr
	}

	return c.stdout
}

func (c *Handler) Enabled(_ context.Context, level slog.Level) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if level >= slog.LevelError {
		c.hasErrored = true
	}

	return level >= c.level.Level()
}

func (c *Handler) Handle(_ context.Context, record slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if record.Level >= slog.LevelError {
		c.hasErrored = true
	}

	var b strings.Builder
	b.WriteString(record.Message)
	record.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})
	b.WriteByte('\n')

	_, err := io.WriteString(c.writer(record.Level), b.String())

	return err
}

// HasErrored returns true if there have been any calls to Handle with
// a level of [slog.LevelError] or above.
func (c *Handler) HasErrored() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasErrored
}

func (c *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	panic("not supported")
}

func (c *Handler) WithGroup(_ string) slog.Handler {
	panic("not supported")
}
