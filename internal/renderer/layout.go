package renderer

import (
	"strings"

	"github.com/dshills/slidestorm/internal/engine/deck"
)

// Wrap breaks lines longer than width, preferring to break on the last
// space before the limit. Width below 1 yields the input unchanged.
func Wrap(lines []string, width int) []string {
	if width < 1 {
		return lines
	}

	var out []string
	for _, line := range lines {
		runes := []rune(line)
		for len(runes) > width {
			cut := width
			if i := lastSpace(runes[:width]); i > 0 {
				cut = i
			}
			out = append(out, strings.TrimRight(string(runes[:cut]), " "))
			runes = trimLeadingSpaces(runes[cut:])
		}
		out = append(out, string(runes))
	}
	return out
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

func trimLeadingSpaces(runes []rune) []rune {
	for len(runes) > 0 && runes[0] == ' ' {
		runes = runes[1:]
	}
	return runes
}

// SlideGrid lays a slide out into a cell grid of the given width. The
// title line is bold; markdown-style heading markers are displayed as
// written, since slide text is plain text.
func SlideGrid(s deck.Slide, width int) *Grid {
	lines := Wrap(s.Lines, width)
	g := NewGrid(width, len(lines))

	for y, line := range lines {
		style := Style{}
		if y == 0 && s.Title != "" {
			style.Bold = true
		}
		x := 0
		for _, r := range line {
			g.Set(x, y, Cell{Rune: r, Style: style})
			x++
		}
	}
	return g
}
