// Package renderer draws the current slide into a terminal cell grid:
// layout, zoom scaling, rotation, annotation overlay and statusline.
package renderer

// Style describes cell appearance. FG is a color name understood by
// the backend ("red", "blue", ...); empty means the terminal default.
type Style struct {
	FG      string
	Bold    bool
	Reverse bool
	Dim     bool
}

// Cell is a single character cell.
type Cell struct {
	Rune  rune
	Style Style
}

// Blank is the empty cell.
var Blank = Cell{Rune: ' '}

// Grid is a rectangular block of cells, addressed (x, y) from the top
// left.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid of blank cells. Negative dimensions are
// treated as zero.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range g.cells {
		g.cells[i] = Blank
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// At returns the cell at (x, y), or Blank outside the grid.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Blank
	}
	return g.cells[y*g.width+x]
}

// Set writes the cell at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = c
}

// Row returns the runes of row y as a string, for tests and the text
// export rendition.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	runes := make([]rune, g.width)
	for x := 0; x < g.width; x++ {
		runes[x] = g.cells[y*g.width+x].Rune
	}
	return string(runes)
}
