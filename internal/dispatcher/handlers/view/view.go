// Package view provides the handler that lists the buffer for display.
package view

import (
	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/input"
)

// ActionDisplay returns every line with its 1-based number.
const ActionDisplay = "view.display"

// Handler implements namespace-based view handling.
type Handler struct{}

// NewHandler creates a new view handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the view namespace.
func (h *Handler) Namespace() string {
	return "view"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	return actionName == ActionDisplay
}

// HandleAction processes a view action. The numbered lines are returned
// under handler.DataLines as []engine.Line; formatting is left to the caller.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateEngine(); err != nil {
		return handler.Error(err)
	}
	if action.Name != ActionDisplay {
		return handler.Errorf("unknown view action: %s", action.Name)
	}

	lines := ctx.Engine.DisplayAll()
	return handler.Success().
		WithData(handler.DataLines, lines).
		WithData(handler.DataCount, len(lines))
}
