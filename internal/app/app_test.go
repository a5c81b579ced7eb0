package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/editor"
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/input"
)

type testApp struct {
	*Application
	out  *bytes.Buffer
	logs *bytes.Buffer
}

func newTestApp(t *testing.T, in string, mutate func(*Options)) *testApp {
	t.Helper()

	var out, logs bytes.Buffer
	opts := Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
		Input:      strings.NewReader(in),
		Output:     &out,
		LogOutput:  &logs,
	}
	if mutate != nil {
		mutate(&opts)
	}

	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = app.Shutdown() })

	return &testApp{Application: app, out: &out, logs: &logs}
}

func (ta *testApp) run(t *testing.T) {
	t.Helper()
	if err := ta.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func assertLines(t *testing.T, e *engine.Engine, want ...string) {
	t.Helper()
	got := e.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") || len(got) != len(want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewDefaults(t *testing.T) {
	ta := newTestApp(t, "", nil)

	if ta.Engine().Cap() != 25 {
		t.Errorf("Cap() = %d, want 25", ta.Engine().Cap())
	}
	if ta.Engine().UndoLimit() != 3 {
		t.Errorf("UndoLimit() = %d, want 3", ta.Engine().UndoLimit())
	}
	if ta.Dispatcher().Metrics() == nil {
		t.Error("dispatcher metrics should be enabled")
	}
	for _, ns := range []string{"file", "line", "word", "search", "view", "history", "script"} {
		if !ta.Dispatcher().Router().HasNamespace(ns) {
			t.Errorf("namespace %q not registered", ns)
		}
	}
}

func TestNewOverrides(t *testing.T) {
	ta := newTestApp(t, "", func(o *Options) {
		o.Capacity = 2
		o.UndoLimit = 5
		o.LogLevel = "debug"
	})

	cfg := ta.Config()
	if cfg.Buffer.Capacity != 2 || cfg.History.Limit != 5 || cfg.Logging.Level != "debug" {
		t.Errorf("Config() = %+v", cfg)
	}
	if ta.Logger().Level() != LogLevelDebug {
		t.Errorf("logger level = %v, want DEBUG", ta.Logger().Level())
	}
}

func TestNewInvalidConfig(t *testing.T) {
	path := writeFile(t, "config.toml", "[buffer]\ncapacity = 0\n")

	_, err := New(Options{ConfigPath: path, Input: strings.NewReader(""), Output: &bytes.Buffer{}, LogOutput: &bytes.Buffer{}})

	var ierr *InitError
	if !errors.As(err, &ierr) || ierr.Component != "config" {
		t.Fatalf("New() error = %v, want config InitError", err)
	}
	if !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("New() error = %v, want ErrValidationFailed", err)
	}
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "lineedit.log")
	cfgPath := writeFile(t, "config.yaml", "logging:\n  file: "+logPath+"\n")

	app, err := New(Options{ConfigPath: cfgPath, Input: strings.NewReader(""), Output: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := app.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "session started") || !strings.Contains(string(data), "session ended") {
		t.Errorf("log file = %q", data)
	}
}

func TestShutdownTwice(t *testing.T) {
	ta := newTestApp(t, "", nil)

	if err := ta.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := ta.Shutdown(); !errors.Is(err, ErrAlreadyShutdown) {
		t.Errorf("second Shutdown() error = %v, want ErrAlreadyShutdown", err)
	}
}

func TestShutdownSummary(t *testing.T) {
	ta := newTestApp(t, "", nil)

	ta.Dispatch(input.NewAction(editor.ActionAdd, "text", "a", "position", 0))
	ta.Dispatch(input.NewAction(editor.ActionAdd, "text", "b", "position", 1))
	ta.Dispatch(input.NewAction(editor.ActionRemove, "position", 9))

	if err := ta.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	logs := ta.logs.String()
	for _, want := range []string{
		"3 actions, 1 errors, 0 panics",
		"2 dispatches, 0% failed",
		"1 dispatches, 100% failed",
		"action=line.remove",
	} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
	if strings.Index(logs, "2 dispatches") > strings.Index(logs, "1 dispatches") {
		t.Errorf("most used action should be listed first:\n%s", logs)
	}
}

func TestMenuScenario(t *testing.T) {
	in := strings.Join([]string{
		"3", "alpha", "0",
		"3", "beta", "1",
		"3", "gamma", "2",
		"5", "gam",
		"4", "1",
		"6", "a", "A",
		"7",
		"11", "11", "11", "11",
		"12",
	}, "\n") + "\n"
	ta := newTestApp(t, in, nil)
	ta.run(t)

	want := strings.Join([]string{
		"Word found at line 3",
		"1: AlphA",
		"2: gAmmA",
		"Undid operation: Substitute Word",
		"Undid operation: Remove Line",
		"Undid operation: Add Line",
		"No operations to undo.",
	}, "\n") + "\n"
	if ta.out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", ta.out.String(), want)
	}
	// Undo only pops labels
	assertLines(t, ta.Engine(), "AlphA", "gAmmA")
}

func TestMenuPrompts(t *testing.T) {
	ta := newTestApp(t, "5\nx\n12\n", func(o *Options) { o.Prompts = true })
	ta.run(t)

	out := ta.out.String()
	for _, want := range []string{
		"1. Read File\n",
		"11. Undo\n12. Exit\n13. Run Script\n14. Show History\nEnter your option: ",
		"Enter word to find: Word not found\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "Enter your option: ") != 2 {
		t.Errorf("expected two option prompts:\n%s", out)
	}
}

func TestMenuNoPromptsWhenPiped(t *testing.T) {
	ta := newTestApp(t, "7\n12\n", nil)
	ta.run(t)

	if ta.out.Len() != 0 {
		t.Errorf("output = %q, want nothing", ta.out.String())
	}
}

func TestMenuInvalidOption(t *testing.T) {
	ta := newTestApp(t, "abc\n99\n0\n\n12\n", nil)
	ta.run(t)

	if got := strings.Count(ta.out.String(), "Invalid option\n"); got != 4 {
		t.Errorf("got %d invalid option messages:\n%s", got, ta.out.String())
	}
}

func TestMenuEndOfInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"mid prompt", "3\nhello\n"},
		{"no trailing newline", "3\nhello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, tt.in, nil)
			ta.run(t)

			if ta.Engine().Len() != 0 {
				t.Errorf("Len() = %d, want 0", ta.Engine().Len())
			}
		})
	}
}

func TestMenuFinalLineWithoutNewline(t *testing.T) {
	ta := newTestApp(t, "3\nhello\n0\n7", nil)
	ta.run(t)

	if ta.out.String() != "1: hello\n" {
		t.Errorf("output = %q", ta.out.String())
	}
}

func TestMenuAddLineKeepsWhitespace(t *testing.T) {
	ta := newTestApp(t, "3\n  indented text \n 0 \n12\n", nil)
	ta.run(t)

	assertLines(t, ta.Engine(), "  indented text ")
}

func TestMenuErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"add bad position", "3\nx\n5\n", "Invalid position.\n"},
		{"add non-numeric position", "3\nx\nfirst\n", "Invalid position.\n"},
		{"remove empty buffer", "4\n0\n", "Invalid position.\n"},
		{"word bad line", "9\n3\n0\n", "Invalid line index.\n"},
		{"read missing file", "1\n/does/not/exist.txt\n", "Error opening file.\n"},
		{"write without file", "2\n\n", "Error: file.write: path: missing argument\n"},
		{"undo empty", "11\n", "No operations to undo.\n"},
		{"substitute empty word", "6\n\nx\n", "Invalid argument.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, tt.in+"12\n", nil)
			ta.run(t)

			if ta.out.String() != tt.want {
				t.Errorf("output = %q, want %q", ta.out.String(), tt.want)
			}
		})
	}
}

func TestMenuBufferFull(t *testing.T) {
	ta := newTestApp(t, "3\na\n0\n3\nb\n1\n3\nc\n2\n12\n", func(o *Options) { o.Capacity = 2 })
	ta.run(t)

	if ta.out.String() != "Buffer is full.\n" {
		t.Errorf("output = %q", ta.out.String())
	}
	assertLines(t, ta.Engine(), "a", "b")
}

func TestMenuWordAtPosition(t *testing.T) {
	in := strings.Join([]string{
		"3", "the quick fox", "0",
		"10", "0", "4", "slow",
		"9", "0", "9",
		"9", "0", "99",
		"7",
		"14",
		"12",
	}, "\n") + "\n"
	ta := newTestApp(t, in, nil)
	ta.run(t)

	want := strings.Join([]string{
		"Word replaced in line 1.",
		"Word removed from line 1.",
		"Invalid position.",
		"1: the slow ",
		"1: Add Line",
		"2: Substitute Word",
		"3: Remove Word",
	}, "\n") + "\n"
	if ta.out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", ta.out.String(), want)
	}
}

func TestMenuShowEmptyHistory(t *testing.T) {
	ta := newTestApp(t, "14\n12\n", nil)
	ta.run(t)

	if ta.out.String() != "No operations recorded.\n" {
		t.Errorf("output = %q", ta.out.String())
	}
}

func TestMenuFileRoundTrip(t *testing.T) {
	src := writeFile(t, "in.txt", "one\ntwo\n")
	dst := filepath.Join(t.TempDir(), "out.txt")

	in := strings.Join([]string{
		"1", src,
		"3", "three", "2",
		"2", dst,
		"3", "four", "3",
		"2", "",
		"12",
	}, "\n") + "\n"
	ta := newTestApp(t, in, nil)
	ta.run(t)

	want := "2 lines read from in.txt.\n3 lines written to out.txt.\n4 lines written to out.txt.\n"
	if ta.out.String() != want {
		t.Errorf("output = %q, want %q", ta.out.String(), want)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo\nthree\nfour\n" {
		t.Errorf("written file = %q", data)
	}
}

func TestMenuDisplayTruncates(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "[display]\nwidth = 10\n")
	ta := newTestApp(t, "3\nabcdefghijklmnop\n0\n7\n12\n", func(o *Options) { o.ConfigPath = cfgPath })
	ta.run(t)

	if ta.out.String() != "1: abcd...\n" {
		t.Errorf("output = %q", ta.out.String())
	}
}

func TestMenuRunScript(t *testing.T) {
	script := writeFile(t, "fill.lua", "ed.add('from script', 0)\nprint(ed.count())\n")

	ta := newTestApp(t, "13\n"+script+"\n7\n12\n", nil)
	ta.run(t)

	want := "1\nRan fill.lua.\n1: from script\n"
	if ta.out.String() != want {
		t.Errorf("output = %q, want %q", ta.out.String(), want)
	}
}

func TestMenuContextCancelled(t *testing.T) {
	ta := newTestApp(t, "7\n", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ta.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunStartupFile(t *testing.T) {
	src := writeFile(t, "start.txt", "hello\n")

	ta := newTestApp(t, "", func(o *Options) { o.Files = []string{src} })
	ta.run(t)

	if ta.out.String() != "1 line read from start.txt.\n" {
		t.Errorf("output = %q", ta.out.String())
	}
	assertLines(t, ta.Engine(), "hello")
	if ta.Dispatcher().FilePath() != src {
		t.Errorf("FilePath() = %q, want %q", ta.Dispatcher().FilePath(), src)
	}
}

func TestRunScriptOption(t *testing.T) {
	script := writeFile(t, "batch.lua", "ed.add('a', 0)\ned.add('b', 1)\n")

	ta := newTestApp(t, "7\n", func(o *Options) { o.Script = script })
	ta.run(t)

	// The menu never runs, so "7" is not consumed as a display.
	if ta.out.String() != "Ran batch.lua.\n" {
		t.Errorf("output = %q", ta.out.String())
	}
	assertLines(t, ta.Engine(), "a", "b")
}

func TestRunScriptFailure(t *testing.T) {
	script := writeFile(t, "bad.lua", "ed.remove(7)\n")

	ta := newTestApp(t, "", func(o *Options) { o.Script = script })
	err := ta.Run(context.Background())

	var oerr *OperationError
	if !errors.As(err, &oerr) || oerr.Op != "script" {
		t.Fatalf("Run() error = %v, want script OperationError", err)
	}
	if !errors.Is(err, engine.ErrInvalidPosition) {
		t.Errorf("Run() error = %v, want ErrInvalidPosition in chain", err)
	}
	if !strings.HasPrefix(ta.out.String(), "Script failed: ") {
		t.Errorf("output = %q", ta.out.String())
	}
}

func TestRunScriptCancelled(t *testing.T) {
	script := writeFile(t, "spin.lua", "while true do end\n")
	ta := newTestApp(t, "", func(o *Options) { o.Script = script })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(50*time.Millisecond, cancel)

	err := ta.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestDispatchLogging(t *testing.T) {
	ta := newTestApp(t, "", func(o *Options) { o.LogLevel = "debug" })

	ta.Dispatch(input.NewAction(editor.ActionAdd, "text", "x", "position", 0))
	ta.Dispatch(input.NewAction(editor.ActionRemove, "position", 9))

	logs := ta.logs.String()
	for _, want := range []string{
		"dispatching action: line.add (source=api)",
		"dispatch complete: line.add -> ok",
		"[WARN] lineedit: action failed:",
		"action=line.remove",
		"session=" + ta.Session().ID,
	} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
}
