// Package execctx carries the viewer components handlers operate on.
package execctx

import (
	"github.com/dshills/slidestorm/internal/engine/annotation"
	"github.com/dshills/slidestorm/internal/engine/deck"
	"github.com/dshills/slidestorm/internal/engine/viewstate"
	"github.com/dshills/slidestorm/internal/event"
)

// Context gives handlers access to the live viewer components. The
// owning application constructs one per dispatch, so a deck swap (live
// reload) is visible to the next action without handler bookkeeping.
type Context struct {
	// View is the authoritative view state controller.
	View *viewstate.Controller

	// Deck is the currently loaded deck.
	Deck *deck.Deck

	// Annotations is the freehand drawing layer.
	Annotations *annotation.Layer

	// Bus is the viewer event bus. May be nil in tests.
	Bus *event.Bus
}

// Publish sends an event if a bus is attached.
func (c *Context) Publish(e event.Event) {
	if c.Bus != nil {
		c.Bus.Publish(e)
	}
}
