package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "text", &buf)

	New("verify").Info("step", "name", "cohort-stats-table")

	out := buf.String()
	for _, want := range []string{"component=verify", "app=dashcheck", "name=cohort-stats-table"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, "json", &buf)

	New("mcp").Info("ready")

	out := buf.String()
	if !strings.Contains(out, `"level":"INFO"`) {
		t.Errorf("expected JSON level field, got: %s", out)
	}
	if !strings.Contains(out, `"component":"mcp"`) {
		t.Errorf("expected JSON component field, got: %s", out)
	}
}

func TestInit_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, "text", &buf)

	logger := New("gate")
	logger.Info("suppressed")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("Info message should be suppressed at Warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("Warn message should appear at Warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}
