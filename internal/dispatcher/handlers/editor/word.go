package editor

import (
	"fmt"

	"github.com/dshills/lineedit/internal/dispatcher/execctx"
	"github.com/dshills/lineedit/internal/dispatcher/handler"
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/input"
)

// Action names for word operations.
const (
	ActionRemoveWord     = "word.remove"     // delete the word at a line and column
	ActionSubstituteWord = "word.substitute" // replace the word at a line and column
)

// WordHandler implements namespace-based word handling.
type WordHandler struct{}

// NewWordHandler creates a new word handler.
func NewWordHandler() *WordHandler {
	return &WordHandler{}
}

// Namespace returns the word namespace.
func (h *WordHandler) Namespace() string {
	return "word"
}

// CanHandle returns true if this handler can process the action.
func (h *WordHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionRemoveWord, ActionSubstituteWord:
		return true
	}
	return false
}

// HandleAction processes a word action.
func (h *WordHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateEngine(); err != nil {
		return handler.Error(err)
	}

	line, err := handler.IntArg(action, "line", engine.ErrInvalidLineIndex)
	if err != nil {
		return handler.Failure(err)
	}
	column, err := handler.IntArg(action, "column", engine.ErrInvalidPosition)
	if err != nil {
		return handler.Failure(err)
	}

	switch action.Name {
	case ActionRemoveWord:
		if err := ctx.Engine.RemoveWordAt(line, column); err != nil {
			return handler.Failure(err)
		}
		return handler.SuccessWithMessage(fmt.Sprintf("Word removed from line %d.", line+1)).
			WithData(handler.DataIndex, line)

	case ActionSubstituteWord:
		word, err := handler.StringArg(action, "word")
		if err != nil {
			return handler.Error(err)
		}
		if err := ctx.Engine.SubstituteWordAt(line, column, word); err != nil {
			return handler.Failure(err)
		}
		return handler.SuccessWithMessage(fmt.Sprintf("Word replaced in line %d.", line+1)).
			WithData(handler.DataIndex, line)

	default:
		return handler.Errorf("unknown word action: %s", action.Name)
	}
}
