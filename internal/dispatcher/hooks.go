package dispatcher

import (
	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/input"
)

// PreDispatchHook is called before an action is dispatched.
// Returning false cancels the dispatch.
type PreDispatchHook interface {
	// PreDispatch may modify the action or context.
	PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool
}

// PostDispatchHook is called after an action is dispatched.
type PostDispatchHook interface {
	// PostDispatch may inspect or modify the result.
	PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(action *input.Action, ctx *execctx.ExecutionContext) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	return f(action, ctx)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	f(action, ctx, result)
}

// LoggingHook reports every dispatch through LogFunc.
type LoggingHook struct {
	// LogFunc is called with log messages.
	LogFunc func(format string, args ...interface{})
}

// NewLoggingHook creates a new logging hook.
func NewLoggingHook(logFunc func(format string, args ...interface{})) *LoggingHook {
	return &LoggingHook{LogFunc: logFunc}
}

// PreDispatch logs the action being dispatched.
func (h *LoggingHook) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	if h.LogFunc != nil {
		h.LogFunc("dispatching action: %s (source=%s)", action.Name, action.Source)
	}
	return true
}

// PostDispatch logs the dispatch result.
func (h *LoggingHook) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	if h.LogFunc == nil {
		return
	}
	if result.Error != nil {
		h.LogFunc("dispatch complete: %s -> %s: %v", action.Name, result.Status, result.Error)
		return
	}
	h.LogFunc("dispatch complete: %s -> %s", action.Name, result.Status)
}
