package app

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/engine"
)

// ellipsis marks a displayed line that was cut to fit the output width.
const ellipsis = "..."

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// displayWidth returns the column width displayed lines are cut to, or zero
// for no limit. A configured width wins over the terminal's.
func displayWidth(cfg config.DisplayConfig, out any) int {
	if !cfg.Truncate {
		return 0
	}
	if cfg.Width > 0 {
		return cfg.Width
	}
	f, ok := out.(fder)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

// formatLine renders a numbered line as "N: text", cut to width columns
// when width is positive.
func formatLine(line engine.Line, width int) string {
	s := fmt.Sprintf("%d: %s", line.Number, line.Text)
	if width > 0 && runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, ellipsis)
	}
	return s
}
