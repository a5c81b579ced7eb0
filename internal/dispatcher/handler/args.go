package handler

import (
	"fmt"

	"github.com/dshills/lineedit/internal/input"
)

// StringArg returns a required string argument. An empty string is a valid
// value; an absent or non-string argument is not.
func StringArg(action input.Action, key string) (string, error) {
	v, ok := action.Args.Get(key)
	if !ok {
		return "", fmt.Errorf("%s: %s: %w", action.Name, key, ErrMissingArgument)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %s: %w", action.Name, key, ErrMissingArgument)
	}
	return s, nil
}

// IntArg returns a required integer argument. A value that is present but
// not an integer is reported as invalid, wrapped around the error the
// engine would return for that kind of index.
func IntArg(action input.Action, key string, invalid error) (int, error) {
	v, ok := action.Args.Get(key)
	if !ok {
		return 0, fmt.Errorf("%s: %s: %w", action.Name, key, ErrMissingArgument)
	}
	n, ok := action.Args.GetInt(key)
	if !ok {
		return 0, fmt.Errorf("%s: %s %v: %w", action.Name, key, v, invalid)
	}
	return n, nil
}
