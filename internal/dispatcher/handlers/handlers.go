// Package handlers registers the built-in action handlers with a dispatcher.
package handlers

import (
	"github.com/dshills/lineedit/internal/dispatcher"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/editor"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/file"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/history"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/script"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/search"
	"github.com/dshills/lineedit/internal/dispatcher/handlers/view"
)

// RegisterAll registers every built-in namespace handler. The script
// namespace is registered only when runner is non-nil.
func RegisterAll(d *dispatcher.Dispatcher, runner script.Runner) {
	d.RegisterNamespace(file.NewHandler())
	d.RegisterNamespace(editor.NewLineHandler())
	d.RegisterNamespace(editor.NewWordHandler())
	d.RegisterNamespace(search.NewHandler())
	d.RegisterNamespace(view.NewHandler())
	d.RegisterNamespace(history.NewHandler())
	if runner != nil {
		d.RegisterNamespace(script.NewHandler(runner))
	}
}
