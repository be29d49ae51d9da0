// Package event provides the viewer's internal publish/subscribe bus.
// Delivery is synchronous: the viewer runs a single event loop, so
// handlers execute inline in publish order and no async dispatch layer
// is needed.
package event

import (
	"time"

	"github.com/dshills/slidestorm/internal/engine/viewstate"
)

// Topic identifies a class of events.
type Topic string

// Bus topics.
const (
	// TopicViewChanged fires after any committed, undone or redone view
	// state change. Payload: ViewChanged.
	TopicViewChanged Topic = "view.changed"

	// TopicDeckLoaded fires after a deck is loaded or reloaded.
	// Payload: DeckLoaded.
	TopicDeckLoaded Topic = "deck.loaded"

	// TopicSlideEntered fires when the visible page changes.
	// Payload: SlideEntered.
	TopicSlideEntered Topic = "slide.entered"

	// TopicSlideLeft fires for the page being navigated away from.
	// Payload: SlideLeft.
	TopicSlideLeft Topic = "slide.left"
)

// Event is a published occurrence on the bus.
type Event struct {
	Topic   Topic
	Payload any
	Time    time.Time
}

// ViewChanged reports a view state transition.
type ViewChanged struct {
	Previous viewstate.ViewState
	Current  viewstate.ViewState

	// Cause names the action that produced the transition, such as
	// "page.next" or "history.undo".
	Cause string
}

// DeckLoaded reports a deck load or live reload.
type DeckLoaded struct {
	Path  string
	Pages int
}

// SlideEntered reports arrival on a page.
type SlideEntered struct {
	Page  int
	Title string
}

// SlideLeft reports departure from a page.
type SlideLeft struct {
	Page int
}
