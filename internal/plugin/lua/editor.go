package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/input"
)

// ModuleName is the global table through which scripts edit the buffer.
const ModuleName = "ed"

// Dispatcher executes actions on behalf of a script.
type Dispatcher interface {
	Dispatch(action input.Action) handler.Result
}

// editorModule binds the ed table to a dispatcher. Every call is counted
// against the sandbox call limit and dispatched with SourceScript.
type editorModule struct {
	d       Dispatcher
	sandbox *Sandbox

	// lastErr is the error of the most recent failed call and lastMsg the
	// Lua error raised for it.
	lastErr error
	lastMsg string
}

func newEditorModule(d Dispatcher, sandbox *Sandbox) *editorModule {
	return &editorModule{d: d, sandbox: sandbox}
}

func (m *editorModule) funcs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"read":            m.read,
		"write":           m.write,
		"add":             m.add,
		"remove":          m.remove,
		"replace":         m.replace,
		"find":            m.find,
		"substitute":      m.substitute,
		"clear":           m.clear,
		"remove_word":     m.removeWord,
		"substitute_word": m.substituteWord,
		"undo":            m.undo,
		"history":         m.history,
		"lines":           m.lines,
		"count":           m.count,
	}
}

// dispatch runs an action and raises a Lua error if it fails.
func (m *editorModule) dispatch(L *lua.LState, name string, kv ...interface{}) handler.Result {
	if err := m.sandbox.CountCall(); err != nil {
		m.fail(L, err, err.Error())
	}

	result := m.d.Dispatch(input.NewAction(name, kv...).WithSource(input.SourceScript))
	if result.IsError() {
		msg := result.Message
		if msg == "" && result.Error != nil {
			msg = result.Error.Error()
		}
		m.fail(L, result.Error, name+": "+msg)
	}
	m.lastErr, m.lastMsg = nil, ""
	return result
}

// fail records err as the pending cause and raises msg in the script.
func (m *editorModule) fail(L *lua.LState, err error, msg string) {
	m.lastErr, m.lastMsg = err, msg
	L.RaiseError("%s", msg)
}

// cause returns the error of the failed call that produced the Lua error
// message msg. A failure the script caught with pcall does not match a
// later, unrelated error.
func (m *editorModule) cause(msg string) error {
	if m.lastErr == nil || !strings.HasSuffix(msg, m.lastMsg) {
		return nil
	}
	return m.lastErr
}

func dataInt(result handler.Result, key string) int {
	v, _ := result.Get(key)
	n, _ := v.(int)
	return n
}

// ed.read(path) -> number of lines read
func (m *editorModule) read(L *lua.LState) int {
	result := m.dispatch(L, "file.read", "path", L.CheckString(1))
	L.Push(lua.LNumber(dataInt(result, handler.DataCount)))
	return 1
}

// ed.write([path])
func (m *editorModule) write(L *lua.LState) int {
	if path := L.OptString(1, ""); path != "" {
		m.dispatch(L, "file.write", "path", path)
	} else {
		m.dispatch(L, "file.write")
	}
	return 0
}

// ed.add(text, pos)
func (m *editorModule) add(L *lua.LState) int {
	m.dispatch(L, "line.add", "text", L.CheckString(1), "position", L.CheckInt(2))
	return 0
}

// ed.remove(pos)
func (m *editorModule) remove(L *lua.LState) int {
	m.dispatch(L, "line.remove", "position", L.CheckInt(1))
	return 0
}

// ed.replace(pos, text)
func (m *editorModule) replace(L *lua.LState) int {
	m.dispatch(L, "line.replace", "position", L.CheckInt(1), "text", L.CheckString(2))
	return 0
}

// ed.find(word) -> 0-based index, or nil
func (m *editorModule) find(L *lua.LState) int {
	result := m.dispatch(L, "search.find", "word", L.CheckString(1))
	if !result.IsOK() {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(dataInt(result, handler.DataIndex)))
	return 1
}

// ed.substitute(old, new) -> number of replacements
func (m *editorModule) substitute(L *lua.LState) int {
	result := m.dispatch(L, "search.substitute", "old", L.CheckString(1), "new", L.CheckString(2))
	L.Push(lua.LNumber(dataInt(result, handler.DataCount)))
	return 1
}

// ed.clear()
func (m *editorModule) clear(L *lua.LState) int {
	m.dispatch(L, "line.clear")
	return 0
}

// ed.remove_word(line, col)
func (m *editorModule) removeWord(L *lua.LState) int {
	m.dispatch(L, "word.remove", "line", L.CheckInt(1), "column", L.CheckInt(2))
	return 0
}

// ed.substitute_word(line, col, word)
func (m *editorModule) substituteWord(L *lua.LState) int {
	m.dispatch(L, "word.substitute", "line", L.CheckInt(1), "column", L.CheckInt(2), "word", L.CheckString(3))
	return 0
}

// ed.undo() -> label, or nil when there is nothing to undo
func (m *editorModule) undo(L *lua.LState) int {
	result := m.dispatch(L, "history.undo")
	v, ok := result.Get(handler.DataLabel)
	label, _ := v.(string)
	if !result.IsOK() || !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(label))
	return 1
}

// ed.history() -> table of labels, oldest first
func (m *editorModule) history(L *lua.LState) int {
	result := m.dispatch(L, "history.list")
	v, _ := result.Get(handler.DataEntries)
	entries, _ := v.([]engine.Entry)

	tbl := L.CreateTable(len(entries), 0)
	for _, e := range entries {
		tbl.Append(lua.LString(e.Label))
	}
	L.Push(tbl)
	return 1
}

// ed.lines() -> table of line texts
func (m *editorModule) lines(L *lua.LState) int {
	result := m.dispatch(L, "view.display")
	v, _ := result.Get(handler.DataLines)
	lines, _ := v.([]engine.Line)

	tbl := L.CreateTable(len(lines), 0)
	for _, line := range lines {
		tbl.Append(lua.LString(line.Text))
	}
	L.Push(tbl)
	return 1
}

// ed.count() -> number of lines
func (m *editorModule) count(L *lua.LState) int {
	result := m.dispatch(L, "view.display")
	L.Push(lua.LNumber(dataInt(result, handler.DataCount)))
	return 1
}
