package renderer

// Scale resizes a grid by a zoom percentage using nearest-neighbor
// sampling: 200 doubles every cell, 50 keeps every other one. The
// result never collapses below 1x1 for a non-empty input.
func Scale(g *Grid, zoom int) *Grid {
	if zoom == 100 || g.Width() == 0 || g.Height() == 0 {
		return g
	}
	if zoom < 1 {
		zoom = 1
	}

	outW := max(1, g.Width()*zoom/100)
	outH := max(1, g.Height()*zoom/100)

	out := NewGrid(outW, outH)
	for y := 0; y < outH; y++ {
		srcY := min(y*100/zoom, g.Height()-1)
		for x := 0; x < outW; x++ {
			srcX := min(x*100/zoom, g.Width()-1)
			out.Set(x, y, g.At(srcX, srcY))
		}
	}
	return out
}

// Rotate turns a grid clockwise by deg degrees, which must be a
// multiple of 90; other values return the grid unchanged.
func Rotate(g *Grid, deg int) *Grid {
	switch deg {
	case 90:
		out := NewGrid(g.Height(), g.Width())
		for y := 0; y < out.Height(); y++ {
			for x := 0; x < out.Width(); x++ {
				out.Set(x, y, g.At(y, g.Height()-1-x))
			}
		}
		return out
	case 180:
		out := NewGrid(g.Width(), g.Height())
		for y := 0; y < out.Height(); y++ {
			for x := 0; x < out.Width(); x++ {
				out.Set(x, y, g.At(g.Width()-1-x, g.Height()-1-y))
			}
		}
		return out
	case 270:
		out := NewGrid(g.Height(), g.Width())
		for y := 0; y < out.Height(); y++ {
			for x := 0; x < out.Width(); x++ {
				out.Set(x, y, g.At(g.Width()-1-y, x))
			}
		}
		return out
	default:
		return g
	}
}
