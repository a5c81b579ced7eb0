package handler

import (
	"testing"

	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/input"
)

func engineAction(name string) input.Action {
	return input.Action{Name: name}
}

type fakeNamespace struct {
	handled []string
}

func (f *fakeNamespace) HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result {
	f.handled = append(f.handled, action.Name)
	return SuccessWithMessage("handled " + action.Name)
}

func (f *fakeNamespace) CanHandle(actionName string) bool {
	return actionName == "fake.ok"
}

func (f *fakeNamespace) Namespace() string {
	return "fake"
}

func TestNamespaceAdapter(t *testing.T) {
	ns := &fakeNamespace{}
	a := NewNamespaceAdapter(ns)

	if !a.CanHandle("fake.ok") || a.CanHandle("fake.other") {
		t.Error("CanHandle() should delegate to the namespace handler")
	}

	r := a.Handle(engineAction("fake.ok"), nil)
	if !r.IsOK() || r.Message != "handled fake.ok" {
		t.Errorf("Handle() = %+v", r)
	}
	if len(ns.handled) != 1 {
		t.Errorf("handled %d actions, want 1", len(ns.handled))
	}
}
