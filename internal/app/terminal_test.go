package app

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/engine"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name  string
		line  engine.Line
		width int
		want  string
	}{
		{"no limit", engine.Line{Number: 1, Text: "hello world"}, 0, "1: hello world"},
		{"fits", engine.Line{Number: 2, Text: "hello"}, 20, "2: hello"},
		{"exact", engine.Line{Number: 3, Text: "hello"}, 8, "3: hello"},
		{"cut", engine.Line{Number: 4, Text: "hello world"}, 8, "4: he..."},
		{"wide runes", engine.Line{Number: 5, Text: "日本語テキスト"}, 9, "5: 日..."},
		{"empty", engine.Line{Number: 6, Text: ""}, 4, "6: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLine(tt.line, tt.width); got != tt.want {
				t.Errorf("formatLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name string
		cfg  config.DisplayConfig
		want int
	}{
		{"truncate off", config.DisplayConfig{Truncate: false, Width: 40}, 0},
		{"configured", config.DisplayConfig{Truncate: true, Width: 40}, 40},
		{"not a terminal", config.DisplayConfig{Truncate: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayWidth(tt.cfg, &buf); got != tt.want {
				t.Errorf("displayWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}

func TestNewSession(t *testing.T) {
	a, b := NewSession(), NewSession()

	if _, err := uuid.Parse(a.ID); err != nil {
		t.Errorf("session ID %q is not a UUID: %v", a.ID, err)
	}
	if a.ID == b.ID {
		t.Error("sessions should get distinct IDs")
	}
	if a.Uptime() < 0 {
		t.Error("Uptime() should not be negative")
	}
}
