package viewstate

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidPageCount is returned by New when the total page count is
// below 1.
var ErrInvalidPageCount = errors.New("total page count must be at least 1")

// Controller owns the authoritative current ViewState and the history
// that can restore prior states. All view mutations route through
// Commit; Undo and Redo only move the history cursor and replay the
// snapshot found there.
//
// Controller is safe for concurrent use. The transition algorithm
// assumes exclusive access during each call, so every operation holds
// an internal mutex.
type Controller struct {
	mu         sync.Mutex
	totalPages int
	current    ViewState
	history    *History
}

// Option configures a Controller.
type Option func(*Controller)

// WithCapacity sets the history capacity. Values below 1 fall back to
// DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *Controller) { c.history = NewHistory(n) }
}

// WithInitialState sets the starting view state. It is normalized like
// any committed state.
func WithInitialState(s ViewState) Option {
	return func(c *Controller) { c.current = s }
}

// New creates a controller for a deck with totalPages pages. The
// initial state (page 1, 100% zoom, no rotation unless overridden) is
// recorded as the first history entry.
func New(totalPages int, opts ...Option) (*Controller, error) {
	if totalPages < 1 {
		return nil, fmt.Errorf("viewstate: %w (got %d)", ErrInvalidPageCount, totalPages)
	}

	c := &Controller{
		totalPages: totalPages,
		current:    ViewState{Page: 1, Zoom: DefaultZoom, Rotation: 0},
		history:    NewHistory(DefaultCapacity),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.current.normalize(c.totalPages)
	c.history.Record(c.current)
	return c, nil
}

// Commit merges the given changes over the current state, clamps and
// normalizes the result, records it as the new undo point, and returns
// it. This is the single mutation entry point: page navigation, zoom
// changes and rotation all route through it.
//
// Committing discards any redo-able entries, so after one or more Undo
// calls a Commit destroys the abandoned future.
func (c *Controller) Commit(changes ...Change) ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current
	for _, change := range changes {
		change(&next)
	}
	next.normalize(c.totalPages)

	c.current = next
	c.history.Record(next)
	return next
}

// Undo moves one step back through history and returns the restored
// state. At the oldest entry it is a no-op and returns the current
// state unchanged.
func (c *Controller) Undo() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if state, ok := c.history.StepBack(); ok {
		c.current = state
	}
	return c.current
}

// Redo moves one step forward through history and returns the restored
// state. At the newest entry it is a no-op and returns the current
// state unchanged.
func (c *Controller) Redo() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if state, ok := c.history.StepForward(); ok {
		c.current = state
	}
	return c.current
}

// CanUndo reports whether Undo would change the state.
func (c *Controller) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.CanStepBack()
}

// CanRedo reports whether Redo would change the state.
func (c *Controller) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.CanStepForward()
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// TotalPages returns the page count the controller clamps against.
func (c *Controller) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// SetTotalPages changes the page count, as happens when a live-reloaded
// deck grows or shrinks. If the current page falls outside the new
// range a clamping commit is recorded so the stored state stays valid.
func (c *Controller) SetTotalPages(totalPages int) error {
	if totalPages < 1 {
		return fmt.Errorf("viewstate: %w (got %d)", ErrInvalidPageCount, totalPages)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalPages = totalPages
	if c.current.Page > totalPages {
		next := c.current
		next.normalize(totalPages)
		c.current = next
		c.history.Record(next)
	}
	return nil
}

// HistoryLen returns the number of recorded snapshots.
func (c *Controller) HistoryLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Len()
}

// HistoryEntries returns a copy of the recorded snapshots in
// chronological order, oldest first.
func (c *Controller) HistoryEntries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Entries()
}
