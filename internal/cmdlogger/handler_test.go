package cmdlogger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/radix/internal/cmdlogger"
)

func TestHandler_RoutesByLevel(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	h := cmdlogger.New(&stdout, &stderr)
	logger := slog.New(h)

	logger.Debug("hidden")
	logger.Info("loaded keys", "count", 3)
	logger.Warn("skipped line")

	if h.HasErrored() {
		t.Errorf("HasErrored() = true before any error")
	}
	logger.Error("boom")

	if diff := cmp.Diff("loaded keys count=3\n", stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("skipped line\nboom\n", stderr.String()); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
	if !h.HasErrored() {
		t.Errorf("HasErrored() = false after an error")
	}
}

func TestHandler_SetLevel(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	h := cmdlogger.New(&stdout, &stderr)
	logger := slog.New(h)

	h.SetLevel(slog.LevelDebug)
	logger.Debug("shown")
	h.SetLevel(slog.LevelError)
	logger.Info("hidden")
	logger.Warn("hidden")

	if diff := cmp.Diff("shown\n", stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", stderr.String())
	}
}
