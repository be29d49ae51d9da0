package renderer

import (
	"github.com/dshills/slidestorm/internal/engine/annotation"
	"github.com/dshills/slidestorm/internal/engine/deck"
	"github.com/dshills/slidestorm/internal/engine/viewstate"
)

// Surface is the subset of a display backend the renderer draws on.
type Surface interface {
	Size() (width, height int)
	SetCell(x, y int, cell Cell)
	Clear()
	Show()
}

// Frame is everything needed to draw one screen.
type Frame struct {
	Slide      deck.Slide
	State      viewstate.ViewState
	TotalPages int
	Strokes    []*annotation.Stroke
	CanUndo    bool
	CanRedo    bool
	Message    string
}

// Renderer composes slide content, annotations and the statusline onto
// a surface.
type Renderer struct {
	surface    Surface
	slideWidth int
	statusline bool
}

// New creates a renderer. slideWidth is the layout width at 100% zoom.
func New(surface Surface, slideWidth int, statusline bool) *Renderer {
	if slideWidth < 8 {
		slideWidth = 8
	}
	return &Renderer{surface: surface, slideWidth: slideWidth, statusline: statusline}
}

// Render draws a complete frame: the slide grid scaled and rotated per
// the view state, centered in the content area, annotation strokes on
// top, and the statusline at the bottom.
func (r *Renderer) Render(f Frame) {
	w, h := r.surface.Size()
	contentH := h
	if r.statusline && h > 0 {
		contentH--
	}

	r.surface.Clear()

	grid := SlideGrid(f.Slide, r.slideWidth)
	grid = Scale(grid, f.State.Zoom)
	grid = Rotate(grid, f.State.Rotation)

	// Center the transformed slide; clip if it outgrows the screen.
	ox := (w - grid.Width()) / 2
	oy := (contentH - grid.Height()) / 2
	for y := 0; y < grid.Height(); y++ {
		sy := oy + y
		if sy < 0 || sy >= contentH {
			continue
		}
		for x := 0; x < grid.Width(); x++ {
			sx := ox + x
			if sx < 0 || sx >= w {
				continue
			}
			r.surface.SetCell(sx, sy, grid.At(x, y))
		}
	}

	r.drawStrokes(f.Strokes, w, contentH)

	if r.statusline && h > 0 {
		r.drawStatusline(f, w, h-1)
	}

	r.surface.Show()
}

// drawStrokes overlays freehand strokes. Stroke points are screen cell
// coordinates captured from mouse events.
func (r *Renderer) drawStrokes(strokes []*annotation.Stroke, w, contentH int) {
	for _, s := range strokes {
		style := Style{FG: s.Color, Bold: true}
		for _, p := range s.Points {
			for dx := 0; dx < s.Width; dx++ {
				x := p.X + dx
				if x < 0 || x >= w || p.Y < 0 || p.Y >= contentH {
					continue
				}
				r.surface.SetCell(x, p.Y, Cell{Rune: '█', Style: style})
			}
		}
	}
}

func (r *Renderer) drawStatusline(f Frame, w, y int) {
	info := StatusInfo{
		Page:       f.State.Page,
		TotalPages: f.TotalPages,
		Zoom:       f.State.Zoom,
		Rotation:   f.State.Rotation,
		CanUndo:    f.CanUndo,
		CanRedo:    f.CanRedo,
		Message:    f.Message,
	}
	line := FormatStatus(info, w)

	style := Style{Reverse: true}
	x := 0
	for _, ch := range line {
		r.surface.SetCell(x, y, Cell{Rune: ch, Style: style})
		x++
	}
	for ; x < w; x++ {
		r.surface.SetCell(x, y, Cell{Rune: ' ', Style: style})
	}
}
