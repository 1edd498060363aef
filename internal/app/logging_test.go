package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelDebug,
		Output: &buf,
		Prefix: "test",
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	for _, want := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]", "test: "} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output", want)
		}
	}
}

func TestLogger_LogLevel_Filtering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelWarn,
		Output: &buf,
	})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") || strings.Contains(output, "[INFO]") {
		t.Errorf("expected DEBUG and INFO to be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "[WARN]") {
		t.Error("expected WARN in output")
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelInfo,
		Output: &buf,
	})
	logger.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 8e6, time.UTC) }

	logger.Info("formatted %s %d", "test", 42)

	want := "2026-03-04T05:06:07.008 [INFO] formatted test 42\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelInfo,
		Output: &buf,
	})

	logger.WithField("session", "abc").WithComponent("watcher").Info("test")

	output := buf.String()
	if !strings.HasSuffix(output, " {component=watcher, session=abc}\n") {
		t.Errorf("expected sorted fields in output, got: %s", output)
	}

	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "{") {
		t.Errorf("parent logger should not carry child fields, got: %s", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger should be disabled")
	}
	NullLogger.Error("discarded")
	NullLogger.WithComponent("x").Error("discarded")
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tern.log")
	logger, closer, err := OpenLogFile(path, LogLevelInfo)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden")
	logger.Info("visible")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "tern: visible") || strings.Contains(string(data), "hidden") {
		t.Errorf("unexpected log file content %q", data)
	}
}
