package dispatcher

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/input"
)

// Dispatcher routes actions to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	router *Router

	engine    execctx.EngineInterface
	sessionID string
	filePath  string

	config  Config
	metrics *Metrics

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		router: NewRouter(),
		config: config,
	}

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	return d
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetEngine sets the editing engine.
func (d *Dispatcher) SetEngine(engine execctx.EngineInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = engine
}

// Engine returns the editing engine.
func (d *Dispatcher) Engine() execctx.EngineInterface {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.engine
}

// SetSessionID sets the session identifier passed to handlers.
func (d *Dispatcher) SetSessionID(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessionID = id
}

// SetFilePath sets the current file path.
func (d *Dispatcher) SetFilePath(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filePath = path
}

// FilePath returns the last file read or written.
func (d *Dispatcher) FilePath() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.filePath
}

// Dispatch executes an action synchronously.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	return d.DispatchContext(context.Background(), action)
}

// DispatchContext executes an action synchronously, handing parent to
// handlers that block (such as script runs).
func (d *Dispatcher) DispatchContext(parent context.Context, action input.Action) handler.Result {
	startTime := time.Now()

	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}

	ctx := d.buildContext(parent, action)

	if !d.runPreHooks(&action, ctx) {
		return handler.Error(ErrActionCancelled).WithMessage("cancelled by hook")
	}

	h := d.router.Route(action.Name)
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	var result handler.Result
	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(h, action, ctx)
	} else {
		result = h.Handle(action, ctx)
	}

	d.processResult(result)
	d.runPostHooks(&action, ctx, &result)

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, time.Since(startTime), result.Status)
	}

	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = handler.Error(fmt.Errorf("%w for %s: %v\n%s", ErrPanic, action.Name, r, stack[:n]))

			if d.metrics != nil {
				d.metrics.RecordPanic()
			}
		}
	}()

	return h.Handle(action, ctx)
}

// buildContext builds an execution context from current state.
func (d *Dispatcher) buildContext(parent context.Context, action input.Action) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx := execctx.New(d.engine)
	ctx.SessionID = d.sessionID
	ctx.FilePath = d.filePath
	ctx.Source = action.Source
	ctx.Context = parent
	return ctx
}

// processResult tracks the current file from successful file actions.
func (d *Dispatcher) processResult(result handler.Result) {
	if !result.IsOK() {
		return
	}
	if v, ok := result.Get(handler.DataPath); ok {
		if path, ok := v.(string); ok && path != "" {
			d.SetFilePath(path)
		}
	}
}

// RegisterNamespace registers a namespace handler under its own namespace.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.router.RegisterNamespace(h.Namespace(), h)
}

// CanDispatch returns true if some handler accepts the action name.
func (d *Dispatcher) CanDispatch(actionName string) bool {
	return d.router.CanRoute(actionName)
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// runPreHooks runs all pre-dispatch hooks.
// Returns false if any hook cancels the action.
func (d *Dispatcher) runPreHooks(action *input.Action, ctx *execctx.ExecutionContext) bool {
	d.mu.RLock()
	hooks := make([]PreDispatchHook, len(d.preHooks))
	copy(hooks, d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(action, ctx) {
			return false
		}
	}
	return true
}

// runPostHooks runs all post-dispatch hooks.
func (d *Dispatcher) runPostHooks(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(action, ctx, result)
	}
}

// Router returns the action router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
