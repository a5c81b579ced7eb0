package lua

import (
	"io"
	"strings"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L *lua.LState

	// Call limiting
	callLimit int64
	callCount int64

	out io.Writer
}

// NewSandbox creates a new sandbox for the Lua state. Output from print goes
// to out; a nil out discards it.
func NewSandbox(L *lua.LState, callLimit int64, out io.Writer) *Sandbox {
	if out == nil {
		out = io.Discard
	}
	return &Sandbox{
		L:         L,
		callLimit: callLimit,
		out:       out,
	}
}

// Install sets up the sandbox restrictions.
func (s *Sandbox) Install() {
	// Remove functions that load code from outside the script
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		s.L.SetGlobal(name, lua.LNil)
	}

	s.L.SetGlobal("print", s.L.NewFunction(s.print))
}

// print writes its arguments tab-separated, followed by a newline.
func (s *Sandbox) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	_, _ = io.WriteString(s.out, strings.Join(parts, "\t")+"\n")
	return 0
}

// ResetCallCount resets the call counter.
func (s *Sandbox) ResetCallCount() {
	atomic.StoreInt64(&s.callCount, 0)
}

// CallCount returns the current call count.
func (s *Sandbox) CallCount() int64 {
	return atomic.LoadInt64(&s.callCount)
}

// CountCall records one editor call and returns ErrCallLimit once the
// limit is exceeded. A limit of zero or less disables the check.
func (s *Sandbox) CountCall() error {
	count := atomic.AddInt64(&s.callCount, 1)
	if s.callLimit > 0 && count > s.callLimit {
		return ErrCallLimit
	}
	return nil
}
