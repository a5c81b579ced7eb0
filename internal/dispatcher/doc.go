// Package dispatcher routes actions to handlers and coordinates execution.
//
// Every command source (the interactive menu, Lua scripts, tests) talks to
// the editing engine through actions:
//
//	d := dispatcher.NewWithDefaults()
//	d.SetEngine(engine.New())
//	d.RegisterNamespace(editor.NewLineHandler())
//
//	result := d.Dispatch(input.NewAction("line.add", "text", "hello", "position", 0))
//
// Actions are routed by the prefix before the first dot. Handler panics
// are recovered into an error result wrapping ErrPanic. DispatchContext
// hands the caller's context to handlers that block, such as script runs.
//
// The dispatcher remembers the last file read or written, so a later
// file.write without a path saves back to the same file.
package dispatcher
