// Package lua runs editing scripts in a sandboxed gopher-lua state.
//
// A script sees only the base, table, string and math libraries; functions
// that load code from disk or strings are removed. The global table "ed"
// exposes the editor:
//
//	ed.read(path)                      -- replace the buffer; returns lines read
//	ed.write([path])                   -- write the buffer
//	ed.add(text, pos)                  -- insert a line (0-based position)
//	ed.remove(pos)                     -- delete a line
//	ed.replace(pos, text)              -- overwrite a line
//	ed.find(word)                      -- 0-based index of first match, or nil
//	ed.substitute(old, new)            -- replace everywhere; returns count
//	ed.clear()                         -- delete every line
//	ed.remove_word(line, col)          -- delete the word at line/col
//	ed.substitute_word(line, col, w)   -- replace the word at line/col
//	ed.undo()                          -- pop the last label, or nil
//	ed.history()                       -- table of labels, oldest first
//	ed.lines()                         -- table of line texts
//	ed.count()                         -- number of lines
//
// Every call goes through the dispatcher, so scripts obey the same rules as
// the interactive menu. A failing call raises a Lua error; if the script
// does not catch it, the run fails with a *ScriptError whose cause is the
// editor error.
//
// Runs are bounded by a timeout and by a limit on editor calls.
package lua
