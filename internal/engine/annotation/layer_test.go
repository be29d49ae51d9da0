package annotation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBeginExtendEnd(t *testing.T) {
	l := NewLayer()

	id := l.Begin(3, Point{X: 1, Y: 1}, "red", 1)
	l.Extend(Point{X: 2, Y: 1})
	l.Extend(Point{X: 3, Y: 2})
	s := l.End()

	if s == nil {
		t.Fatal("End() returned nil")
	}
	if s.ID != id {
		t.Errorf("stroke id = %v, want %v", s.ID, id)
	}
	if s.Page != 3 {
		t.Errorf("stroke page = %d, want 3", s.Page)
	}
	want := []Point{{1, 1}, {2, 1}, {3, 2}}
	if diff := cmp.Diff(want, s.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if s.Created.IsZero() {
		t.Error("stroke timestamp not set")
	}
}

func TestExtendCollapsesDuplicates(t *testing.T) {
	l := NewLayer()
	l.Begin(1, Point{X: 5, Y: 5}, "red", 1)
	l.Extend(Point{X: 5, Y: 5})
	l.Extend(Point{X: 5, Y: 5})
	l.Extend(Point{X: 6, Y: 5})

	s := l.End()
	if len(s.Points) != 2 {
		t.Errorf("len(points) = %d, want 2", len(s.Points))
	}
}

func TestExtendWithoutBegin(t *testing.T) {
	l := NewLayer()
	l.Extend(Point{X: 1, Y: 1})
	if s := l.End(); s != nil {
		t.Errorf("End() = %+v, want nil", s)
	}
}

func TestBeginCommitsPreviousStroke(t *testing.T) {
	l := NewLayer()
	l.Begin(1, Point{X: 0, Y: 0}, "red", 1)
	l.Begin(1, Point{X: 9, Y: 9}, "blue", 1)
	l.End()

	if got := len(l.StrokesFor(1)); got != 2 {
		t.Errorf("strokes on page 1 = %d, want 2", got)
	}
}

func TestStrokesForIncludesActive(t *testing.T) {
	l := NewLayer()
	l.Begin(2, Point{X: 0, Y: 0}, "red", 1)

	if got := len(l.StrokesFor(2)); got != 1 {
		t.Errorf("strokes on page 2 = %d, want 1 (the in-progress stroke)", got)
	}
	if got := len(l.StrokesFor(1)); got != 0 {
		t.Errorf("strokes on page 1 = %d, want 0", got)
	}
}

func TestStrokesForReturnsCopies(t *testing.T) {
	l := NewLayer()
	l.Begin(1, Point{X: 0, Y: 0}, "red", 1)
	l.End()

	got := l.StrokesFor(1)
	got[0].Points[0] = Point{X: 99, Y: 99}

	if l.StrokesFor(1)[0].Points[0] != (Point{X: 0, Y: 0}) {
		t.Error("mutating returned stroke changed the layer")
	}
}

func TestClearPage(t *testing.T) {
	l := NewLayer()
	l.Begin(1, Point{}, "red", 1)
	l.End()
	l.Begin(2, Point{}, "red", 1)
	l.End()
	l.Begin(1, Point{}, "blue", 2)

	if got := l.ClearPage(1); got != 2 {
		t.Errorf("ClearPage(1) = %d, want 2 (one committed, one active)", got)
	}
	if got := len(l.StrokesFor(1)); got != 0 {
		t.Errorf("strokes on page 1 after clear = %d, want 0", got)
	}
	if got := l.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestMinimumWidth(t *testing.T) {
	l := NewLayer()
	l.Begin(1, Point{}, "red", 0)
	s := l.End()
	if s.Width != 1 {
		t.Errorf("width = %d, want 1", s.Width)
	}
}
