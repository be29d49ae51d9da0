// Package viewstate maintains the authoritative view state for a deck
// and a bounded linear history enabling undo/redo.
//
// # View state
//
// A ViewState is the tuple (page, zoom, rotation) describing how the
// current slide is displayed. States are values; once recorded they are
// never mutated, a new state is always constructed.
//
// # History
//
// History is a cursor-addressed sequence of timestamped snapshots:
//
//	ctrl, _ := viewstate.New(12)
//
//	ctrl.Commit(viewstate.WithPage(2))
//	ctrl.Commit(viewstate.WithZoom(150))
//
//	ctrl.Undo() // back to page 2 at 100%
//	ctrl.Redo() // forward to 150% again
//
// Committing a new state discards every entry after the cursor, so the
// timeline is always linear; there is no branching. When the history
// exceeds its capacity the oldest entries are dropped.
//
// # Validation
//
// Commit clamps and normalizes rather than rejecting: zoom is clamped to
// [MinZoom, MaxZoom], page to [1, totalPages], and rotation is snapped to
// a multiple of 90 modulo 360. Every stored and returned state is valid
// by construction, so consumers never re-validate.
//
// Undo and redo at the history boundaries are saturating no-ops, not
// errors. Callers that need to distinguish use CanUndo and CanRedo.
package viewstate
