package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/exp/slog"
)

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Debug("hidden")
	logger.Info("map loaded", "nodes", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %q", out)
	}
	if !strings.HasSuffix(out, "INFO map loaded nodes=4\n") {
		t.Errorf("log line = %q; want suffix %q", out, "INFO map loaded nodes=4\n")
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("log output = %q; want a single line", out)
	}
}
