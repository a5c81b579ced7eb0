package lua

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Default limits for Lua state.
const (
	DefaultCallLimit        = 10_000
	DefaultExecutionTimeout = 5 * time.Second
)

// State wraps gopher-lua with a sandbox and execution limits.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls
// from Go; scripts themselves run on the calling goroutine.
type State struct {
	L *lua.LState

	mu sync.Mutex

	// Configuration
	executionTimeout time.Duration
	callLimit        int64
	out              io.Writer

	sandbox *Sandbox

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the execution timeout for a script run.
// Zero disables the timeout.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.executionTimeout = d
	}
}

// WithCallLimit sets the maximum editor calls per script run.
func WithCallLimit(limit int64) StateOption {
	return func(s *State) {
		s.callLimit = limit
	}
}

// WithOutput sets where print writes.
func WithOutput(w io.Writer) StateOption {
	return func(s *State) {
		s.out = w
	}
}

// NewState creates a new sandboxed Lua state.
func NewState(opts ...StateOption) *State {
	state := &State{
		executionTimeout: DefaultExecutionTimeout,
		callLimit:        DefaultCallLimit,
	}

	for _, opt := range opts {
		opt(state)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	state.L = L

	openSafeLibraries(L)

	state.sandbox = NewSandbox(L, state.callLimit, state.out)
	state.sandbox.Install()

	return state
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug, package and channel are intentionally not opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// DoFile executes a Lua file. The call blocks until the script finishes,
// fails, or ctx (bounded by the execution timeout) is done.
func (s *State) DoFile(ctx context.Context, path string) error {
	return s.run(ctx, func() error {
		return s.L.DoFile(path)
	})
}

// DoString executes a Lua chunk.
func (s *State) DoString(ctx context.Context, code string) error {
	return s.run(ctx, func() error {
		return s.L.DoString(code)
	})
}

func (s *State) run(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	if s.executionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.executionTimeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	s.sandbox.ResetCallCount()

	err := s.doWithRecovery(fn)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("%w: %s", ctx.Err(), luaMessage(err))
	}
	return err
}

// doWithRecovery executes a function with panic recovery.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// RegisterModule registers a global table with the given functions.
func (s *State) RegisterModule(name string, funcs map[string]lua.LGFunction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	mod := s.L.SetFuncs(s.L.NewTable(), funcs)
	s.L.SetGlobal(name, mod)
}

// Sandbox returns the sandbox.
func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

// IsClosed returns true if the state has been closed.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases all resources associated with the Lua state.
// After Close is called, all other methods will return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.L.Close()
	s.closed = true
	return nil
}
