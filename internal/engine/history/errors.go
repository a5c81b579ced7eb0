package history

import "errors"

// ErrEmptyLog indicates there is no recorded operation to undo.
var ErrEmptyLog = errors.New("nothing to undo")
