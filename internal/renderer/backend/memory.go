package backend

import (
	"sync"

	"github.com/dshills/slidestorm/internal/renderer"
)

// Memory is an in-memory Backend for tests and headless rendering.
type Memory struct {
	mu     sync.Mutex
	grid   *renderer.Grid
	events chan Event
	shows  int
}

// NewMemory creates a memory backend with a fixed size.
func NewMemory(width, height int) *Memory {
	return &Memory{
		grid:   renderer.NewGrid(width, height),
		events: make(chan Event, 64),
	}
}

func (m *Memory) Init() error { return nil }

func (m *Memory) Fini() {}

func (m *Memory) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.Width(), m.grid.Height()
}

func (m *Memory) SetCell(x, y int, cell renderer.Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grid.Set(x, y, cell)
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grid = renderer.NewGrid(m.grid.Width(), m.grid.Height())
}

func (m *Memory) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shows++
}

func (m *Memory) PollEvent() Event {
	return <-m.events
}

func (m *Memory) PostEvent(ev Event) {
	m.events <- ev
}

// Cell returns the cell last drawn at (x, y).
func (m *Memory) Cell(x, y int) renderer.Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.At(x, y)
}

// Row returns the runes of a row as a string.
func (m *Memory) Row(y int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.Row(y)
}

// ShowCount returns how many times Show was called.
func (m *Memory) ShowCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shows
}
