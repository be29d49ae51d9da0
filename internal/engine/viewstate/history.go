package viewstate

import "time"

// DefaultCapacity is the number of history entries kept when no explicit
// capacity is configured.
const DefaultCapacity = 50

// Entry is a recorded view state snapshot.
type Entry struct {
	State ViewState
	Time  time.Time
}

// History is a bounded, linear, cursor-addressed sequence of view state
// snapshots. The cursor always points at the entry holding the current
// state, or -1 exactly when the history is empty.
//
// History is not safe for concurrent use; Controller serializes access.
type History struct {
	entries  []Entry
	cursor   int
	capacity int
}

// NewHistory creates an empty history holding at most capacity entries.
// A capacity below 1 falls back to DefaultCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{cursor: -1, capacity: capacity}
}

// Record appends a snapshot as the newest entry. Entries after the
// cursor (the redo future) are discarded first, then the oldest entries
// are dropped if the capacity would be exceeded. The cursor lands on the
// new last index.
func (h *History) Record(state ViewState) {
	h.entries = append(h.entries[:h.cursor+1], Entry{State: state, Time: time.Now()})
	if len(h.entries) > h.capacity {
		excess := len(h.entries) - h.capacity
		h.entries = h.entries[excess:]
	}
	h.cursor = len(h.entries) - 1
}

// StepBack moves the cursor one entry toward the past and returns the
// snapshot there. At the oldest entry it reports false and the cursor
// does not move.
func (h *History) StepBack() (ViewState, bool) {
	if h.cursor <= 0 {
		return ViewState{}, false
	}
	h.cursor--
	return h.entries[h.cursor].State, true
}

// StepForward moves the cursor one entry toward the present and returns
// the snapshot there. At the newest entry it reports false and the
// cursor does not move.
func (h *History) StepForward() (ViewState, bool) {
	if h.cursor >= len(h.entries)-1 {
		return ViewState{}, false
	}
	h.cursor++
	return h.entries[h.cursor].State, true
}

// CanStepBack reports whether an older snapshot exists.
func (h *History) CanStepBack() bool {
	return h.cursor > 0
}

// CanStepForward reports whether a newer snapshot exists.
func (h *History) CanStepForward() bool {
	return h.cursor < len(h.entries)-1
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the current cursor index, or -1 if the history is empty.
func (h *History) Cursor() int {
	return h.cursor
}

// Capacity returns the maximum number of entries kept.
func (h *History) Capacity() int {
	return h.capacity
}

// Entries returns a copy of the recorded entries in chronological order.
func (h *History) Entries() []Entry {
	if len(h.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear removes all entries and resets the cursor.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}
