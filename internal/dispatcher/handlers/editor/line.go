package editor

import (
	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/input"
)

// Action names for line operations.
const (
	ActionAdd     = "line.add"     // insert a line at a position
	ActionRemove  = "line.remove"  // delete the line at a position
	ActionReplace = "line.replace" // overwrite the line at a position
	ActionClear   = "line.clear"   // delete every line
)

// LineHandler implements namespace-based line handling.
type LineHandler struct{}

// NewLineHandler creates a new line handler.
func NewLineHandler() *LineHandler {
	return &LineHandler{}
}

// Namespace returns the line namespace.
func (h *LineHandler) Namespace() string {
	return "line"
}

// CanHandle returns true if this handler can process the action.
func (h *LineHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionAdd, ActionRemove, ActionReplace, ActionClear:
		return true
	}
	return false
}

// HandleAction processes a line action.
func (h *LineHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateEngine(); err != nil {
		return handler.Error(err)
	}

	switch action.Name {
	case ActionAdd:
		return h.add(action, ctx)
	case ActionRemove:
		return h.remove(action, ctx)
	case ActionReplace:
		return h.replace(action, ctx)
	case ActionClear:
		ctx.Engine.Clear()
		return handler.Success()
	default:
		return handler.Errorf("unknown line action: %s", action.Name)
	}
}

func (h *LineHandler) add(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	text, err := handler.StringArg(action, "text")
	if err != nil {
		return handler.Error(err)
	}
	pos, err := handler.IntArg(action, "position", engine.ErrInvalidPosition)
	if err != nil {
		return handler.Failure(err)
	}

	if err := ctx.Engine.Insert(text, pos); err != nil {
		return handler.Failure(err)
	}
	return handler.Success().WithData(handler.DataIndex, pos)
}

func (h *LineHandler) remove(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	pos, err := handler.IntArg(action, "position", engine.ErrInvalidPosition)
	if err != nil {
		return handler.Failure(err)
	}

	if err := ctx.Engine.Remove(pos); err != nil {
		return handler.Failure(err)
	}
	return handler.Success().WithData(handler.DataIndex, pos)
}

func (h *LineHandler) replace(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	pos, err := handler.IntArg(action, "position", engine.ErrInvalidPosition)
	if err != nil {
		return handler.Failure(err)
	}
	text, err := handler.StringArg(action, "text")
	if err != nil {
		return handler.Error(err)
	}

	if err := ctx.Engine.Replace(pos, text); err != nil {
		return handler.Failure(err)
	}
	return handler.Success().WithData(handler.DataIndex, pos)
}
