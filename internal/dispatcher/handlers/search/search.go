package search

import (
	"fmt"

	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/input"
)

// Action names for search operations.
const (
	ActionFind       = "search.find"       // locate the first line containing a word
	ActionSubstitute = "search.substitute" // replace a word everywhere
)

// Handler implements namespace-based search handling.
type Handler struct{}

// NewHandler creates a new search handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the search namespace.
func (h *Handler) Namespace() string {
	return "search"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionFind, ActionSubstitute:
		return true
	}
	return false
}

// HandleAction processes a search action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateEngine(); err != nil {
		return handler.Error(err)
	}

	switch action.Name {
	case ActionFind:
		return h.find(action, ctx)
	case ActionSubstitute:
		return h.substitute(action, ctx)
	default:
		return handler.Errorf("unknown search action: %s", action.Name)
	}
}

// find reports the first line containing the word as a substring.
func (h *Handler) find(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	word, err := handler.StringArg(action, "word")
	if err != nil {
		return handler.Error(err)
	}

	index, ok := ctx.Engine.Find(word)
	if !ok {
		return handler.NoOpWithMessage("Word not found")
	}
	return handler.SuccessWithMessage(fmt.Sprintf("Word found at line %d", index+1)).
		WithData(handler.DataIndex, index)
}

// substitute replaces every occurrence of old with new in every line.
func (h *Handler) substitute(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	oldWord, err := handler.StringArg(action, "old")
	if err != nil {
		return handler.Error(err)
	}
	newWord, err := handler.StringArg(action, "new")
	if err != nil {
		return handler.Error(err)
	}

	n, err := ctx.Engine.SubstituteAll(oldWord, newWord)
	if err != nil {
		return handler.Failure(err)
	}
	return handler.Success().WithData(handler.DataCount, n)
}
