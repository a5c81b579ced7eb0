package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/editor"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/file"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/history"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/script"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/search"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/view"
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/input"
)

// Menu options.
const (
	OptionReadFile = iota + 1
	OptionWriteFile
	OptionAddLine
	OptionRemoveLine
	OptionFindWord
	OptionSubstituteWord
	OptionDisplayLines
	OptionClearLines
	OptionRemoveWordAt
	OptionSubstituteWordAt
	OptionUndo
	OptionExit
	OptionRunScript
	OptionShowHistory
)

var menuLabels = []string{
	OptionReadFile:         "Read File",
	OptionWriteFile:        "Write File",
	OptionAddLine:          "Add Line",
	OptionRemoveLine:       "Remove Line",
	OptionFindWord:         "Find Word",
	OptionSubstituteWord:   "Substitute Word",
	OptionDisplayLines:     "Display Lines",
	OptionClearLines:       "Clear Lines",
	OptionRemoveWordAt:     "Remove Word At Position",
	OptionSubstituteWordAt: "Substitute Word At Position",
	OptionUndo:             "Undo",
	OptionExit:             "Exit",
	OptionRunScript:        "Run Script",
	OptionShowHistory:      "Show History",
}

// Console prompts.
const (
	promptOption   = "Enter your option: "
	promptFilename = "Enter filename: "
	promptLine     = "Enter line: "
	promptPosition = "Enter position: "
	promptFind     = "Enter word to find: "
	promptOldWord  = "Enter old word: "
	promptNewWord  = "Enter new word: "
	promptIndex    = "Enter line index: "
	promptScript   = "Enter script: "
)

// runMenu runs the numbered menu until the user exits or input ends.
func (app *Application) runMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		app.printMenu()
		option, err := app.readOption()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrInvalidOption):
			app.println("Invalid option")
			continue
		case err != nil:
			return err
		}

		err = app.runOption(ctx, option)
		switch {
		case errors.Is(err, ErrQuit), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
	}
}

// printMenu prints the numbered options when prompting.
func (app *Application) printMenu() {
	if !app.interactive {
		return
	}
	for i := OptionReadFile; i < len(menuLabels); i++ {
		fmt.Fprintf(app.out, "%d. %s\n", i, menuLabels[i])
	}
}

// readOption reads a menu choice.
func (app *Application) readOption() (int, error) {
	s, err := app.prompt(promptOption)
	if err != nil {
		return 0, err
	}
	option, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || option < OptionReadFile || option >= len(menuLabels) {
		return 0, ErrInvalidOption
	}
	return option, nil
}

// runOption performs one menu choice.
func (app *Application) runOption(ctx context.Context, option int) error {
	if option == OptionExit {
		return ErrQuit
	}

	action, err := app.readAction(option)
	if err != nil {
		return err
	}
	result := app.dispatch(ctx, action)

	switch option {
	case OptionDisplayLines:
		app.printLines(result)
	case OptionShowHistory:
		app.printHistory(result)
	default:
		app.report(result)
	}
	return nil
}

// menuField is an argument a menu option prompts for.
type menuField struct {
	key    string
	prompt string
	raw    bool // keep surrounding whitespace
}

// menuAction maps a menu option to the action it dispatches.
type menuAction struct {
	name   string
	fields []menuField
}

var menuActions = map[int]menuAction{
	OptionReadFile:  {file.ActionRead, []menuField{{"path", promptFilename, false}}},
	OptionWriteFile: {file.ActionWrite, []menuField{{"path", promptFilename, false}}},
	OptionAddLine: {editor.ActionAdd, []menuField{
		{"text", promptLine, true},
		{"position", promptPosition, false},
	}},
	OptionRemoveLine: {editor.ActionRemove, []menuField{{"position", promptPosition, false}}},
	OptionFindWord:   {search.ActionFind, []menuField{{"word", promptFind, false}}},
	OptionSubstituteWord: {search.ActionSubstitute, []menuField{
		{"old", promptOldWord, false},
		{"new", promptNewWord, false},
	}},
	OptionDisplayLines: {view.ActionDisplay, nil},
	OptionClearLines:   {editor.ActionClear, nil},
	OptionRemoveWordAt: {editor.ActionRemoveWord, []menuField{
		{"line", promptIndex, false},
		{"column", promptPosition, false},
	}},
	OptionSubstituteWordAt: {editor.ActionSubstituteWord, []menuField{
		{"line", promptIndex, false},
		{"column", promptPosition, false},
		{"word", promptNewWord, false},
	}},
	OptionUndo:        {history.ActionUndo, nil},
	OptionRunScript:   {script.ActionRun, []menuField{{"path", promptScript, false}}},
	OptionShowHistory: {history.ActionList, nil},
}

// readAction prompts for an option's arguments and builds its action.
func (app *Application) readAction(option int) (input.Action, error) {
	ma, ok := menuActions[option]
	if !ok {
		return input.Action{}, ErrInvalidOption
	}

	kv := make([]interface{}, 0, 2*len(ma.fields))
	for _, f := range ma.fields {
		s, err := app.prompt(f.prompt)
		if err != nil {
			return input.Action{}, err
		}
		if !f.raw {
			s = strings.TrimSpace(s)
		}
		kv = append(kv, f.key, s)
	}
	return input.NewAction(ma.name, kv...), nil
}

// prompt prints label when prompting and reads one line of input without
// its line terminator. A final line with no terminator is returned as is.
func (app *Application) prompt(label string) (string, error) {
	if app.interactive {
		fmt.Fprint(app.out, label)
	}
	s, err := app.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// printLines prints a display result as "N: text" lines.
func (app *Application) printLines(result handler.Result) {
	v, ok := result.Get(handler.DataLines)
	lines, _ := v.([]engine.Line)
	if !ok {
		app.report(result)
		return
	}
	for _, line := range lines {
		app.println(formatLine(line, app.width))
	}
}

// printHistory prints the recorded operation labels, oldest first.
func (app *Application) printHistory(result handler.Result) {
	v, ok := result.Get(handler.DataEntries)
	entries, _ := v.([]engine.Entry)
	if !ok {
		app.report(result)
		return
	}
	if len(entries) == 0 {
		app.println("No operations recorded.")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(app.out, "%d: %s\n", i+1, e.Label)
	}
}
