package app

import (
	"testing"

	"github.com/dshills/slidestorm/internal/renderer/backend"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     backend.Event
		action string
	}{
		{"space advances", backend.Event{Key: backend.KeyRune, Rune: ' '}, "page.next"},
		{"n advances", backend.Event{Key: backend.KeyRune, Rune: 'n'}, "page.next"},
		{"right arrow advances", backend.Event{Key: backend.KeyRight}, "page.next"},
		{"page down advances", backend.Event{Key: backend.KeyPageDown}, "page.next"},
		{"p goes back", backend.Event{Key: backend.KeyRune, Rune: 'p'}, "page.prev"},
		{"left arrow goes back", backend.Event{Key: backend.KeyLeft}, "page.prev"},
		{"home first", backend.Event{Key: backend.KeyHome}, "page.first"},
		{"end last", backend.Event{Key: backend.KeyEnd}, "page.last"},
		{"g first", backend.Event{Key: backend.KeyRune, Rune: 'g'}, "page.first"},
		{"G last", backend.Event{Key: backend.KeyRune, Rune: 'G'}, "page.last"},
		{"plus zooms in", backend.Event{Key: backend.KeyRune, Rune: '+'}, "zoom.in"},
		{"minus zooms out", backend.Event{Key: backend.KeyRune, Rune: '-'}, "zoom.out"},
		{"zero resets zoom", backend.Event{Key: backend.KeyRune, Rune: '0'}, "zoom.reset"},
		{"r rotates", backend.Event{Key: backend.KeyRune, Rune: 'r'}, "view.rotate"},
		{"u undoes", backend.Event{Key: backend.KeyRune, Rune: 'u'}, "history.undo"},
		{"ctrl-z undoes", backend.Event{Key: backend.KeyCtrlZ}, "history.undo"},
		{"ctrl-r redoes", backend.Event{Key: backend.KeyCtrlR}, "history.redo"},
		{"c clears annotations", backend.Event{Key: backend.KeyRune, Rune: 'c'}, "annotate.clear"},
		{"ctrl-e exports html", backend.Event{Key: backend.KeyCtrlE}, "export.html"},
		{"ctrl-p exports text", backend.Event{Key: backend.KeyCtrlP}, "export.print"},
		{"ctrl-l reloads", backend.Event{Key: backend.KeyCtrlL}, "deck.reload"},
		{"q quits", backend.Event{Key: backend.KeyRune, Rune: 'q'}, "app.quit"},
		{"escape quits", backend.Event{Key: backend.KeyEscape}, "app.quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := translateKey(tt.ev)
			if !ok {
				t.Fatalf("key not bound")
			}
			if action.Name != tt.action {
				t.Errorf("action = %q, want %q", action.Name, tt.action)
			}
		})
	}
}

func TestTranslateKeyDigitsCarryPage(t *testing.T) {
	action, ok := translateKey(backend.Event{Key: backend.KeyRune, Rune: '7'})
	if !ok {
		t.Fatal("digit not bound")
	}
	if action.Name != "page.goto" {
		t.Fatalf("action = %q, want page.goto", action.Name)
	}
	page, ok := action.IntArg("page")
	if !ok || page != 7 {
		t.Errorf("page arg = %d (ok=%v), want 7", page, ok)
	}
}

func TestTranslateKeyShiftRRotatesCCW(t *testing.T) {
	action, ok := translateKey(backend.Event{Key: backend.KeyRune, Rune: 'R'})
	if !ok {
		t.Fatal("R not bound")
	}
	dir, _ := action.StringArg("dir")
	if dir != "ccw" {
		t.Errorf("dir = %q, want ccw", dir)
	}
}

func TestTranslateKeyUnbound(t *testing.T) {
	if _, ok := translateKey(backend.Event{Key: backend.KeyRune, Rune: 'x'}); ok {
		t.Error("x should be unbound")
	}
	if _, ok := translateKey(backend.Event{Key: backend.KeyNone}); ok {
		t.Error("KeyNone should be unbound")
	}
}
