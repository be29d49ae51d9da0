package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelWarn, &buf)

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("shown")
	log.Error("also shown")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("below-level messages logged:\n%s", got)
	}
	if !strings.Contains(got, "WARN shown") || !strings.Contains(got, "ERROR also shown") {
		t.Errorf("expected messages missing:\n%s", got)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelInfo, &buf).With("page", 3).With("deck", "talk.deck")

	log.Info("rendered")

	got := buf.String()
	if !strings.Contains(got, "page=3") || !strings.Contains(got, "deck=talk.deck") {
		t.Errorf("fields missing:\n%s", got)
	}
}

func TestLoggerWithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(LogLevelInfo, &buf)
	parent.With("k", "v")

	parent.Info("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Error("With leaked fields into the parent logger")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
