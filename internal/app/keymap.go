package app

import (
	"github.com/dshills/slidestorm/internal/dispatcher"
	"github.com/dshills/slidestorm/internal/renderer/backend"
)

// translateKey maps a key event to a viewer action. The second return
// is false for unbound keys.
func translateKey(ev backend.Event) (dispatcher.Action, bool) {
	switch ev.Key {
	case backend.KeyRune:
		return translateRune(ev.Rune)
	case backend.KeyRight, backend.KeyDown, backend.KeyPageDown, backend.KeyEnter:
		return dispatcher.NewAction("page.next"), true
	case backend.KeyLeft, backend.KeyUp, backend.KeyPageUp:
		return dispatcher.NewAction("page.prev"), true
	case backend.KeyHome:
		return dispatcher.NewAction("page.first"), true
	case backend.KeyEnd:
		return dispatcher.NewAction("page.last"), true
	case backend.KeyCtrlZ:
		return dispatcher.NewAction("history.undo"), true
	case backend.KeyCtrlY, backend.KeyCtrlR:
		return dispatcher.NewAction("history.redo"), true
	case backend.KeyCtrlP:
		return dispatcher.NewAction("export.print"), true
	case backend.KeyCtrlE:
		return dispatcher.NewAction("export.html"), true
	case backend.KeyCtrlL:
		return dispatcher.NewAction("deck.reload"), true
	case backend.KeyEscape, backend.KeyCtrlC:
		return dispatcher.NewAction("app.quit"), true
	default:
		return dispatcher.Action{}, false
	}
}

func translateRune(r rune) (dispatcher.Action, bool) {
	switch r {
	case ' ', 'n', 'j', 'l':
		return dispatcher.NewAction("page.next"), true
	case 'p', 'k', 'h':
		return dispatcher.NewAction("page.prev"), true
	case 'g':
		return dispatcher.NewAction("page.first"), true
	case 'G':
		return dispatcher.NewAction("page.last"), true
	case '+', '=':
		return dispatcher.NewAction("zoom.in"), true
	case '-', '_':
		return dispatcher.NewAction("zoom.out"), true
	case '0':
		return dispatcher.NewAction("zoom.reset"), true
	case 'r':
		return dispatcher.NewAction("view.rotate"), true
	case 'R':
		return dispatcher.NewAction("view.rotate").WithArg("dir", "ccw"), true
	case 'u':
		return dispatcher.NewAction("history.undo"), true
	case 'U':
		return dispatcher.NewAction("history.redo"), true
	case 'c':
		return dispatcher.NewAction("annotate.clear"), true
	case 'q':
		return dispatcher.NewAction("app.quit"), true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return dispatcher.NewAction("page.goto").WithArg("page", int(r-'0')), true
	default:
		return dispatcher.Action{}, false
	}
}
