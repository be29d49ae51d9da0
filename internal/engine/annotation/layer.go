package annotation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Point is a cell coordinate on the rendered slide.
type Point struct {
	X, Y int
}

// Stroke is one continuous freehand mark on a slide.
type Stroke struct {
	ID      uuid.UUID
	Page    int
	Points  []Point
	Color   string
	Width   int
	Created time.Time
}

// clone returns a deep copy so callers cannot mutate stored strokes.
func (s *Stroke) clone() *Stroke {
	out := *s
	out.Points = make([]Point, len(s.Points))
	copy(out.Points, s.Points)
	return &out
}

// Layer holds all strokes for a deck, grouped by page, plus at most one
// stroke currently being drawn.
type Layer struct {
	mu      sync.Mutex
	strokes map[int][]*Stroke
	active  *Stroke
}

// NewLayer creates an empty annotation layer.
func NewLayer() *Layer {
	return &Layer{strokes: make(map[int][]*Stroke)}
}

// Begin starts a new stroke on the given page. Any stroke still in
// progress is committed first.
func (l *Layer) Begin(page int, p Point, color string, width int) uuid.UUID {
	if width < 1 {
		width = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.endLocked()
	l.active = &Stroke{
		ID:      uuid.New(),
		Page:    page,
		Points:  []Point{p},
		Color:   color,
		Width:   width,
		Created: time.Now(),
	}
	return l.active.ID
}

// Extend appends a point to the stroke in progress. Without an active
// stroke it is a no-op.
func (l *Layer) Extend(p Point) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active == nil {
		return
	}
	// Drag events repeat coordinates; collapse consecutive duplicates.
	last := l.active.Points[len(l.active.Points)-1]
	if last == p {
		return
	}
	l.active.Points = append(l.active.Points, p)
}

// End commits the stroke in progress and returns it, or nil if nothing
// was being drawn.
func (l *Layer) End() *Stroke {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.endLocked()
}

func (l *Layer) endLocked() *Stroke {
	s := l.active
	if s == nil {
		return nil
	}
	l.active = nil
	l.strokes[s.Page] = append(l.strokes[s.Page], s)
	return s.clone()
}

// StrokesFor returns copies of the committed strokes on a page, oldest
// first, plus the in-progress stroke if it is on that page.
func (l *Layer) StrokesFor(page int) []*Stroke {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*Stroke
	for _, s := range l.strokes[page] {
		out = append(out, s.clone())
	}
	if l.active != nil && l.active.Page == page {
		out = append(out, l.active.clone())
	}
	return out
}

// ClearPage removes all committed strokes on a page and abandons the
// in-progress stroke if it is there. Returns the number removed.
func (l *Layer) ClearPage(page int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.strokes[page])
	delete(l.strokes, page)
	if l.active != nil && l.active.Page == page {
		l.active = nil
		n++
	}
	return n
}

// Count returns the total number of committed strokes across all pages.
func (l *Layer) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, strokes := range l.strokes {
		n += len(strokes)
	}
	return n
}

// Drawing reports whether a stroke is currently in progress.
func (l *Layer) Drawing() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active != nil
}
