package file

import (
	"path/filepath"
	"strconv"

	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/input"
)

// Action names for file operations.
const (
	ActionRead  = "file.read"  // replace the buffer with a file's lines
	ActionWrite = "file.write" // write the buffer to a file
)

// Handler implements namespace-based file handling.
type Handler struct{}

// NewHandler creates a new file handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the file namespace.
func (h *Handler) Namespace() string {
	return "file"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionRead, ActionWrite:
		return true
	}
	return false
}

// HandleAction processes a file action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateEngine(); err != nil {
		return handler.Error(err)
	}

	switch action.Name {
	case ActionRead:
		return h.read(action, ctx)
	case ActionWrite:
		return h.write(action, ctx)
	default:
		return handler.Errorf("unknown file action: %s", action.Name)
	}
}

// read loads a file into the buffer. The buffer is left unchanged on failure.
func (h *Handler) read(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	path := action.Args.GetString("path")
	if path == "" {
		return handler.MissingArgument(ActionRead, "path")
	}

	n, err := ctx.Engine.LoadFile(path)
	if err != nil {
		return handler.Failure(err)
	}

	return handler.SuccessWithMessage(pluralLines(n) + " read from " + filepath.Base(path) + ".").
		WithData(handler.DataPath, path).
		WithData(handler.DataCount, n)
}

// write saves the buffer. Without a path argument it writes to the file
// most recently read or written.
func (h *Handler) write(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	path := action.Args.GetString("path")
	if path == "" {
		path = ctx.FilePath
	}
	if path == "" {
		return handler.MissingArgument(ActionWrite, "path")
	}

	if err := ctx.Engine.SaveFile(path); err != nil {
		return handler.Failure(err)
	}

	n := ctx.Engine.Len()
	return handler.SuccessWithMessage(pluralLines(n) + " written to " + filepath.Base(path) + ".").
		WithData(handler.DataPath, path).
		WithData(handler.DataCount, n)
}

func pluralLines(n int) string {
	if n == 1 {
		return "1 line"
	}
	return strconv.Itoa(n) + " lines"
}
