// Package input defines the actions exchanged between command sources
// (the interactive menu, scripts) and the dispatcher.
package input

import (
	"strconv"
	"strings"
)

// ActionSource indicates where an action originated.
type ActionSource uint8

const (
	// SourceMenu is the interactive menu loop.
	SourceMenu ActionSource = iota
	// SourceScript is a Lua script.
	SourceScript
	// SourceAPI is direct programmatic use.
	SourceAPI
)

// String returns a string representation of the source.
func (s ActionSource) String() string {
	switch s {
	case SourceMenu:
		return "menu"
	case SourceScript:
		return "script"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// ActionArgs holds the named arguments of an action.
type ActionArgs struct {
	// Extra holds the argument values by name.
	Extra map[string]interface{}
}

// Get retrieves a value from Extra.
func (a ActionArgs) Get(key string) (interface{}, bool) {
	if a.Extra == nil {
		return nil, false
	}
	v, ok := a.Extra[key]
	return v, ok
}

// Has returns true if the argument is present.
func (a ActionArgs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// GetString retrieves a string value from Extra.
func (a ActionArgs) GetString(key string) string {
	if v, ok := a.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetInt retrieves an integer value from Extra. Integral floats (as produced
// by Lua) and decimal strings are accepted. Reports false if the argument is
// missing or not an integer.
func (a ActionArgs) GetInt(key string) (int, bool) {
	v, ok := a.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "line.add", "file.read").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource
}

// NewAction creates an action from alternating key/value pairs.
// A trailing key without a value is ignored.
func NewAction(name string, kv ...interface{}) Action {
	a := Action{Name: name, Source: SourceAPI}
	if len(kv) >= 2 {
		a.Args.Extra = make(map[string]interface{}, len(kv)/2)
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			a.Args.Extra[key] = kv[i+1]
		}
	}
	return a
}

// WithSource returns a copy of the action with the specified source.
func (a Action) WithSource(src ActionSource) Action {
	a.Source = src
	return a
}

// Namespace returns the action name prefix before the first dot.
func (a Action) Namespace() string {
	if i := strings.IndexByte(a.Name, '.'); i > 0 {
		return a.Name[:i]
	}
	return ""
}
