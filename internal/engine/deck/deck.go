// Package deck holds the slide deck model: an ordered list of slides
// loaded from a plain text file in which slides are separated by lines
// containing only "---". The viewer never parses presentation file
// formats; the deck is the text the presenter wrote.
package deck

import (
	"fmt"
	"os"
	"strings"
)

// Slide is a single page of the deck.
type Slide struct {
	// Title is the first non-blank line of the slide with any leading
	// markdown heading markers stripped. Empty for a blank slide.
	Title string

	// Lines is the slide body, including the title line, with trailing
	// blank lines removed.
	Lines []string
}

// Deck is an immutable, ordered collection of slides.
type Deck struct {
	path   string
	slides []Slide
}

// Separator is the line that splits the deck file into slides.
const Separator = "---"

// Load reads and parses a deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading deck %s: %w", path, err)
	}
	d := Parse(string(data))
	d.path = path
	return d, nil
}

// Parse builds a deck from deck-file text. The result always has at
// least one slide so a controller can be built over it.
func Parse(text string) *Deck {
	var slides []Slide
	var current []string

	flush := func() {
		slides = append(slides, newSlide(current))
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == Separator {
			flush()
			continue
		}
		current = append(current, strings.TrimRight(line, "\r"))
	}
	flush()

	// A deck of nothing but separators (or an empty file) still views
	// as a single blank slide.
	if len(slides) == 0 {
		slides = []Slide{{}}
	}
	return &Deck{slides: slides}
}

// newSlide trims surrounding blank lines and extracts the title.
func newSlide(lines []string) Slide {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	body := lines[start:end]

	s := Slide{Lines: body}
	if len(body) > 0 {
		s.Title = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(body[0]), "#"))
	}
	return s
}

// PageCount returns the number of slides, always at least 1.
func (d *Deck) PageCount() int {
	return len(d.slides)
}

// Slide returns the slide at the given 1-based page number.
func (d *Deck) Slide(page int) (Slide, bool) {
	if page < 1 || page > len(d.slides) {
		return Slide{}, false
	}
	return d.slides[page-1], true
}

// Slides returns a copy of all slides in order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	copy(out, d.slides)
	return out
}

// Path returns the file the deck was loaded from, or "" for parsed text.
func (d *Deck) Path() string {
	return d.path
}

// Title returns the title of the given page, or "" if out of range.
func (d *Deck) Title(page int) string {
	s, ok := d.Slide(page)
	if !ok {
		return ""
	}
	return s.Title
}

// Text returns the raw body of the given page joined with newlines.
func (d *Deck) Text(page int) string {
	s, ok := d.Slide(page)
	if !ok {
		return ""
	}
	return strings.Join(s.Lines, "\n")
}
