// Package history provides handlers for the undo log.
//
// Undo pops the most recent operation label and reports it. The buffer
// itself is not restored.
package history

import (
	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/input"
)

// Action names for undo log operations.
const (
	ActionUndo = "history.undo" // pop the most recent label
	ActionList = "history.list" // list the recorded labels
)

// Handler implements namespace-based undo log handling.
type Handler struct{}

// NewHandler creates a new history handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the history namespace.
func (h *Handler) Namespace() string {
	return "history"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionUndo, ActionList:
		return true
	}
	return false
}

// HandleAction processes a history action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateEngine(); err != nil {
		return handler.Error(err)
	}

	switch action.Name {
	case ActionUndo:
		label, err := ctx.Engine.Undo()
		if err != nil {
			return handler.NoOpWithMessage(handler.MessageFor(err))
		}
		return handler.SuccessWithMessage("Undid operation: "+label).
			WithData(handler.DataLabel, label)

	case ActionList:
		entries := ctx.Engine.History()
		return handler.Success().
			WithData(handler.DataEntries, entries).
			WithData(handler.DataCount, len(entries))

	default:
		return handler.Errorf("unknown history action: %s", action.Name)
	}
}
