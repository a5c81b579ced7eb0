package app

import (
	"bytes"
	"strings"
	"testing"
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

func TestNewLogger_DefaultOutput(t *testing.T) {
	logger := NewLogger(LoggerConfig{Output: nil})
	if logger.sink.output == nil {
		t.Error("expected default output to be set")
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
	for _, want := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]", "test:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
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
	logger.Error("error")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") || strings.Contains(output, "[INFO]") {
		t.Errorf("expected DEBUG and INFO to be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "[WARN]") || !strings.Contains(output, "[ERROR]") {
		t.Errorf("expected WARN and ERROR in output, got: %s", output)
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelInfo,
		Output: &buf,
	})

	logger.Info("formatted %s %d", "test", 42)

	if !strings.Contains(buf.String(), "formatted test 42") {
		t.Errorf("expected formatted message, got: %s", buf.String())
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelInfo,
		Output: &buf,
	})

	logger.WithFields(map[string]any{
		"zeta":  1,
		"alpha": "a",
	}).WithComponent("menu").Info("test")

	want := "test {alpha=a, component=menu, zeta=1}\n"
	if !strings.HasSuffix(buf.String(), want) {
		t.Errorf("output = %q, want suffix %q", buf.String(), want)
	}
}

func TestLogger_WithFieldDoesNotModifyParent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelInfo,
		Output: &buf,
	})

	_ = logger.WithField("key", "value")
	logger.Info("plain")

	if strings.Contains(buf.String(), "key=value") {
		t.Errorf("parent logger gained a field: %s", buf.String())
	}
}

func TestLogger_DerivedSharesSink(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:  LogLevelWarn,
		Output: &buf,
	})
	child := logger.WithComponent("engine")

	child.Info("should not appear")
	if buf.Len() != 0 {
		t.Error("expected no output below the parent's level")
	}
	if child.Level() != LogLevelWarn {
		t.Errorf("child.Level() = %v, want WARN", child.Level())
	}

	child.Warn("from child")
	logger.Warn("from parent")
	out := buf.String()
	if !strings.Contains(out, "from child") || !strings.Contains(out, "from parent") {
		t.Errorf("expected both loggers to write to the shared output, got %q", out)
	}
}
