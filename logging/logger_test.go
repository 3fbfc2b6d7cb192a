package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{" error ", slog.LevelError},
		{"invalid", slog.LevelInfo}, // default to INFO
		{"", slog.LevelInfo},        // default to INFO
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(slog.LevelInfo, FormatJSON, &buf)

		logger.Info("dataset fetched", "dataset", "channels", "records", 3)

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
		}
		if record["msg"] != "dataset fetched" {
			t.Errorf("unexpected msg %v", record["msg"])
		}
		if record["dataset"] != "channels" {
			t.Errorf("unexpected dataset %v", record["dataset"])
		}
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(slog.LevelInfo, "TEXT", &buf)

		logger.Info("playlist generated", "entries", 2)

		out := buf.String()
		if !strings.Contains(out, `msg="playlist generated"`) || !strings.Contains(out, "entries=2") {
			t.Errorf("unexpected text output %q", out)
		}
	})

	t.Run("unknown format falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(slog.LevelInfo, "xml", &buf)

		logger.Info("hello")

		if !strings.HasPrefix(buf.String(), "{") {
			t.Errorf("expected JSON output, got %q", buf.String())
		}
	})

	t.Run("filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(slog.LevelWarn, FormatText, &buf)

		logger.Info("hidden")
		logger.Debug("hidden")
		logger.Warn("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("expected records below WARN to be dropped, got %q", out)
		}
		if !strings.Contains(out, "shown") {
			t.Errorf("expected WARN record, got %q", out)
		}
	})
}
