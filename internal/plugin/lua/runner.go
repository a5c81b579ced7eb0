package lua

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Runner executes scripts against a dispatcher. Each run gets a fresh
// sandboxed state, so scripts share no Lua globals.
type Runner struct {
	d       Dispatcher
	timeout time.Duration
	limit   int64
	out     io.Writer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerTimeout sets the per-script timeout.
func WithRunnerTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithRunnerCallLimit sets the per-script editor call limit.
func WithRunnerCallLimit(limit int64) RunnerOption {
	return func(r *Runner) {
		r.limit = limit
	}
}

// WithRunnerOutput sets where script print output goes.
func WithRunnerOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.out = w
	}
}

// NewRunner creates a script runner that dispatches editor calls to d.
func NewRunner(d Dispatcher, opts ...RunnerOption) *Runner {
	r := &Runner{
		d:       d,
		timeout: DefaultExecutionTimeout,
		limit:   DefaultCallLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile executes the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	return r.run(path, func(s *State) error {
		return s.DoFile(ctx, path)
	})
}

// RunString executes code; name identifies the chunk in errors.
func (r *Runner) RunString(ctx context.Context, name, code string) error {
	return r.run(name, func(s *State) error {
		return s.DoString(ctx, code)
	})
}

func (r *Runner) run(name string, fn func(*State) error) error {
	state := NewState(
		WithExecutionTimeout(r.timeout),
		WithCallLimit(r.limit),
		WithOutput(r.out),
	)
	defer state.Close()

	mod := newEditorModule(r.d, state.Sandbox())
	state.RegisterModule(ModuleName, mod.funcs())

	err := fn(state)
	if err == nil {
		return nil
	}

	msg := luaMessage(err)
	serr := &ScriptError{Path: name, Message: msg, Err: mod.cause(msg)}
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		serr.Err = err
	case serr.Err == nil:
		serr.Err = err
	}
	return serr
}

// luaMessage extracts the Lua error value without the stack trace.
func luaMessage(err error) string {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		return apiErr.Object.String()
	}
	msg, _, _ := strings.Cut(err.Error(), "\nstack traceback:")
	return msg
}
