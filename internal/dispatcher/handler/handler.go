// Package handler provides the handler interface and types for action dispatch.
package handler

import (
	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/input"
)

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool
}

// NamespaceHandler handles every action under one namespace prefix
// (e.g., "line" for "line.add" and "line.remove").
type NamespaceHandler interface {
	// HandleAction executes the action and returns a result.
	HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix.
	Namespace() string
}

// NamespaceAdapter exposes a NamespaceHandler as a Handler.
type NamespaceAdapter struct {
	h NamespaceHandler
}

// NewNamespaceAdapter wraps a namespace handler.
func NewNamespaceAdapter(h NamespaceHandler) *NamespaceAdapter {
	return &NamespaceAdapter{h: h}
}

// Handle implements Handler.Handle.
func (a *NamespaceAdapter) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	return a.h.HandleAction(action, ctx)
}

// CanHandle implements Handler.CanHandle.
func (a *NamespaceAdapter) CanHandle(actionName string) bool {
	return a.h.CanHandle(actionName)
}
