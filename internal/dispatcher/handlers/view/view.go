// Package view handles page navigation, zoom, rotation and view
// history actions. All of them funnel into the view state controller,
// which clamps and records every transition.
package view

import (
	"strings"

	"github.com/dshills/slidestorm/internal/dispatcher"
	"github.com/dshills/slidestorm/internal/dispatcher/execctx"
	"github.com/dshills/slidestorm/internal/engine/viewstate"
)

// DefaultZoomStep is the zoom increment used when none is configured.
const DefaultZoomStep = 25

// Handler processes the page.*, zoom.*, view.* and history.* actions.
type Handler struct {
	zoomStep int
}

// NewHandler creates a view handler. A zoomStep below 1 falls back to
// DefaultZoomStep.
func NewHandler(zoomStep int) *Handler {
	if zoomStep < 1 {
		zoomStep = DefaultZoomStep
	}
	return &Handler{zoomStep: zoomStep}
}

// CanHandle implements dispatcher.Handler.
func (h *Handler) CanHandle(name string) bool {
	for _, prefix := range []string{"page.", "zoom.", "view.", "history."} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Priority implements dispatcher.Handler.
func (h *Handler) Priority() int {
	return 0
}

// Handle implements dispatcher.Handler.
func (h *Handler) Handle(action dispatcher.Action, ctx *execctx.Context) dispatcher.Result {
	if ctx == nil || ctx.View == nil {
		return dispatcher.Errorf("view handler: no controller in context")
	}

	state := ctx.View.State()

	switch action.Name {
	case "page.next":
		ctx.View.Commit(viewstate.WithPage(state.Page + 1))
	case "page.prev":
		ctx.View.Commit(viewstate.WithPage(state.Page - 1))
	case "page.first":
		ctx.View.Commit(viewstate.WithPage(1))
	case "page.last":
		ctx.View.Commit(viewstate.WithPage(ctx.View.TotalPages()))
	case "page.goto":
		page, ok := action.IntArg("page")
		if !ok {
			return dispatcher.Errorf("page.goto: missing page argument")
		}
		ctx.View.Commit(viewstate.WithPage(page))

	case "zoom.in":
		ctx.View.Commit(viewstate.WithZoom(state.Zoom + h.zoomStep))
	case "zoom.out":
		ctx.View.Commit(viewstate.WithZoom(state.Zoom - h.zoomStep))
	case "zoom.reset":
		ctx.View.Commit(viewstate.WithZoom(viewstate.DefaultZoom))
	case "zoom.set":
		zoom, ok := action.IntArg("zoom")
		if !ok {
			return dispatcher.Errorf("zoom.set: missing zoom argument")
		}
		ctx.View.Commit(viewstate.WithZoom(zoom))

	case "view.rotate":
		delta := 90
		if dir, ok := action.StringArg("dir"); ok && dir == "ccw" {
			delta = -90
		}
		ctx.View.Commit(viewstate.WithRotation(state.Rotation + delta))

	case "history.undo":
		ctx.View.Undo()
	case "history.redo":
		ctx.View.Redo()

	default:
		return dispatcher.Errorf("view handler: unknown action %s", action.Name)
	}

	return dispatcher.Ok()
}
