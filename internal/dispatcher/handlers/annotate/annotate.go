// Package annotate handles annotation layer actions.
package annotate

import (
	"strings"

	"github.com/dshills/slidestorm/internal/dispatcher"
	"github.com/dshills/slidestorm/internal/dispatcher/execctx"
)

// Handler processes the annotate.* actions. Stroke capture itself is
// driven by mouse events in the application loop; the dispatchable
// surface is the bulk operations.
type Handler struct{}

// NewHandler creates an annotate handler.
func NewHandler() *Handler {
	return &Handler{}
}

// CanHandle implements dispatcher.Handler.
func (h *Handler) CanHandle(name string) bool {
	return strings.HasPrefix(name, "annotate.")
}

// Priority implements dispatcher.Handler.
func (h *Handler) Priority() int {
	return 0
}

// Handle implements dispatcher.Handler.
func (h *Handler) Handle(action dispatcher.Action, ctx *execctx.Context) dispatcher.Result {
	if ctx == nil || ctx.Annotations == nil {
		return dispatcher.Errorf("annotate handler: no layer in context")
	}

	switch action.Name {
	case "annotate.clear":
		page, ok := action.IntArg("page")
		if !ok {
			if ctx.View == nil {
				return dispatcher.Errorf("annotate.clear: no view in context")
			}
			page = ctx.View.State().Page
		}
		n := ctx.Annotations.ClearPage(page)
		return dispatcher.Okf("cleared %d strokes on page %d", n, page)

	case "annotate.end":
		ctx.Annotations.End()
		return dispatcher.Ok()

	default:
		return dispatcher.Errorf("annotate handler: unknown action %s", action.Name)
	}
}
