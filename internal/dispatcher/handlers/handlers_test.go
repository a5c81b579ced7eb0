package handlers

import (
	"context"
	"reflect"
	"testing"

	"github.com/dshills/lineedit/internal/dispatcher"
)

type nopRunner struct{}

func (nopRunner) RunFile(context.Context, string) error { return nil }

func TestRegisterAll(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	RegisterAll(d, nopRunner{})

	want := []string{"file", "history", "line", "script", "search", "view", "word"}
	if got := d.Router().Namespaces(); !reflect.DeepEqual(got, want) {
		t.Errorf("Namespaces() = %v, want %v", got, want)
	}

	for _, name := range []string{
		"file.read", "file.write", "line.add", "line.remove", "line.replace", "line.clear",
		"word.remove", "word.substitute", "search.find", "search.substitute",
		"view.display", "history.undo", "history.list", "script.run",
	} {
		if !d.CanDispatch(name) {
			t.Errorf("CanDispatch(%q) = false", name)
		}
	}
}

func TestRegisterAllWithoutRunner(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	RegisterAll(d, nil)

	if d.CanDispatch("script.run") {
		t.Error("script.run should not be routable without a runner")
	}
}
