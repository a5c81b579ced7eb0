// Package script provides the handler that runs editing scripts.
package script

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/input"
)

// ActionRun runs the script at "path".
const ActionRun = "script.run"

// ErrNestedScript is returned when a script tries to start another script.
var ErrNestedScript = errors.New("scripts cannot run other scripts")

// Runner executes a script file.
type Runner interface {
	RunFile(ctx context.Context, path string) error
}

// Handler implements namespace-based script handling.
type Handler struct {
	runner Runner
}

// NewHandler creates a new script handler that delegates to runner.
func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner}
}

// Namespace returns the script namespace.
func (h *Handler) Namespace() string {
	return "script"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	return actionName == ActionRun
}

// HandleAction processes a script action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if action.Name != ActionRun {
		return handler.Errorf("unknown script action: %s", action.Name)
	}
	if h.runner == nil {
		return handler.Errorf("script.run: no script runner configured")
	}
	if action.Source == input.SourceScript {
		return handler.Error(ErrNestedScript)
	}

	path := action.Args.GetString("path")
	if path == "" {
		return handler.MissingArgument(ActionRun, "path")
	}

	if err := h.runner.RunFile(ctx.Ctx(), path); err != nil {
		return handler.Error(err).WithMessage("Script failed: " + err.Error())
	}
	return handler.SuccessWithMessage("Ran " + filepath.Base(path) + ".")
}
