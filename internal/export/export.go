// Package export produces out-of-viewer renditions of a deck: a plain
// text printout and a crude standalone HTML document for download.
package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dshills/slidestorm/internal/engine/deck"
)

// Text writes a printable rendition: each slide under a numbered header
// with a separator between pages.
func Text(w io.Writer, d *deck.Deck) error {
	for page := 1; page <= d.PageCount(); page++ {
		slide, _ := d.Slide(page)

		header := fmt.Sprintf("Slide %d/%d", page, d.PageCount())
		if slide.Title != "" {
			header += ": " + slide.Title
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", header, strings.Repeat("=", len(header))); err != nil {
			return fmt.Errorf("writing text export: %w", err)
		}

		for _, line := range slide.Lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("writing text export: %w", err)
			}
		}
		if page < d.PageCount() {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("writing text export: %w", err)
			}
		}
	}
	return nil
}

// HTML converts slide text with goldmark, so decks written in
// markdown export with headings and emphasis intact.
type HTML struct {
	md    goldmark.Markdown
	title string
}

// NewHTML creates an HTML exporter. The title lands in the document
// head; empty falls back to "Slides".
func NewHTML(title string) *HTML {
	if title == "" {
		title = "Slides"
	}
	return &HTML{md: goldmark.New(), title: title}
}

// Write emits a standalone HTML document with one section per slide.
func (h *HTML) Write(w io.Writer, d *deck.Deck) error {
	if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
.slide { border-bottom: 1px solid #ccc; padding: 2em 1em; }
</style>
</head>
<body>
`, html.EscapeString(h.title)); err != nil {
		return fmt.Errorf("writing html export: %w", err)
	}

	for page := 1; page <= d.PageCount(); page++ {
		if _, err := fmt.Fprintf(w, "<section class=\"slide\" id=\"slide-%d\">\n", page); err != nil {
			return fmt.Errorf("writing html export: %w", err)
		}
		if err := h.md.Convert([]byte(d.Text(page)), w); err != nil {
			return fmt.Errorf("converting slide %d: %w", page, err)
		}
		if _, err := fmt.Fprintln(w, "</section>"); err != nil {
			return fmt.Errorf("writing html export: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w, "</body>\n</html>"); err != nil {
		return fmt.Errorf("writing html export: %w", err)
	}
	return nil
}
