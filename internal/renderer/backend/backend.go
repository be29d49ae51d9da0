// Package backend abstracts the terminal so the renderer and the
// application loop can be tested against an in-memory screen.
package backend

import "github.com/dshills/slidestorm/internal/renderer"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventQuit
)

// Key represents a keyboard key.
type Key int

// Key constants for the keys the viewer binds.
const (
	KeyNone Key = iota
	KeyRune     // Regular character; see the Rune field.
	KeyEscape
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCtrlC
	KeyCtrlE
	KeyCtrlL
	KeyCtrlP
	KeyCtrlR
	KeyCtrlY
	KeyCtrlZ
)

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRelease
)

// Event is a terminal event.
type Event struct {
	Type EventType

	// Key event fields.
	Key  Key
	Rune rune

	// Mouse event fields.
	MouseX, MouseY int
	Button         MouseButton

	// Resize event fields.
	Width, Height int
}

// Backend is the display surface the renderer draws on.
type Backend interface {
	// Init prepares the backend. Must be called first.
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current dimensions.
	Size() (width, height int)

	// SetCell writes one cell. Out-of-range writes are ignored.
	SetCell(x, y int, cell renderer.Cell)

	// Clear blanks the screen.
	Clear()

	// Show flushes buffered changes to the display.
	Show()

	// PollEvent blocks for the next terminal event.
	PollEvent() Event

	// PostEvent queues a synthetic event for PollEvent.
	PostEvent(ev Event)
}
