package script

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/input"
)

type fakeRunner struct {
	paths []string
	ctx   context.Context
	err   error
}

func (f *fakeRunner) RunFile(ctx context.Context, path string) error {
	f.paths = append(f.paths, path)
	f.ctx = ctx
	return f.err
}

func TestRun(t *testing.T) {
	r := &fakeRunner{}
	result := NewHandler(r).HandleAction(input.NewAction(ActionRun, "path", "/tmp/fix.lua"), &execctx.ExecutionContext{})

	if !result.IsOK() {
		t.Fatalf("run failed: %v", result.Error)
	}
	if len(r.paths) != 1 || r.paths[0] != "/tmp/fix.lua" {
		t.Errorf("runner called with %q", r.paths)
	}
	if result.Message != "Ran fix.lua." {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestRunErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		runner  Runner
		action  input.Action
		wantErr error
	}{
		{"runner failure", &fakeRunner{err: boom}, input.NewAction(ActionRun, "path", "x.lua"), boom},
		{"missing path", &fakeRunner{}, input.NewAction(ActionRun), handler.ErrMissingArgument},
		{"nested", &fakeRunner{}, input.NewAction(ActionRun, "path", "x.lua").WithSource(input.SourceScript), ErrNestedScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewHandler(tt.runner).HandleAction(tt.action, &execctx.ExecutionContext{})
			if !errors.Is(result.Error, tt.wantErr) {
				t.Errorf("Error = %v, want %v", result.Error, tt.wantErr)
			}
		})
	}
}

func TestNoRunner(t *testing.T) {
	result := NewHandler(nil).HandleAction(input.NewAction(ActionRun, "path", "x.lua"), &execctx.ExecutionContext{})
	if !result.IsError() {
		t.Error("run without a runner should fail")
	}
}

type ctxKey struct{}

func TestRunPassesCallerContext(t *testing.T) {
	r := &fakeRunner{}
	parent := context.WithValue(context.Background(), ctxKey{}, "session")
	ctx := &execctx.ExecutionContext{Context: parent}

	NewHandler(r).HandleAction(input.NewAction(ActionRun, "path", "fix.lua"), ctx)

	if r.ctx == nil || r.ctx.Value(ctxKey{}) != "session" {
		t.Errorf("runner got context %v, want the caller's", r.ctx)
	}
}

func TestRunWithoutContext(t *testing.T) {
	r := &fakeRunner{}
	NewHandler(r).HandleAction(input.NewAction(ActionRun, "path", "fix.lua"), &execctx.ExecutionContext{})

	if r.ctx == nil {
		t.Error("runner should get a background context when none is set")
	}
}
