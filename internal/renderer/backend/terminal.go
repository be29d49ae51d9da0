package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/slidestorm/internal/renderer"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	// Mouse reporting drives annotation stroke capture.
	t.screen.EnableMouse()
	return nil
}

func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell renderer.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// PollEvent blocks for the next event. Synthetic events posted via
// PostEvent arrive as tcell interrupts.
func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventInterrupt:
			if posted, ok := ev.Data().(Event); ok {
				return posted
			}
		case *tcell.EventKey:
			return convertKeyEvent(ev)
		case *tcell.EventMouse:
			x, y := ev.Position()
			btn := MouseNone
			switch {
			case ev.Buttons()&tcell.Button1 != 0:
				btn = MouseLeft
			case ev.Buttons() == tcell.ButtonNone:
				btn = MouseRelease
			}
			return Event{Type: EventMouse, MouseX: x, MouseY: y, Button: btn}
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case nil:
			// Screen finalized.
			return Event{Type: EventQuit}
		default:
			// Ignore paste, focus and other event kinds.
		}
	}
}

// PostEvent queues a synthetic event. It goes through the screen so a
// goroutine blocked in PollEvent wakes up to receive it.
func (t *Terminal) PostEvent(ev Event) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

// convertKeyEvent maps a tcell key event to a backend event.
func convertKeyEvent(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape}
	case tcell.KeyEnter:
		return Event{Type: EventKey, Key: KeyEnter}
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp}
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown}
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft}
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight}
	case tcell.KeyPgUp:
		return Event{Type: EventKey, Key: KeyPageUp}
	case tcell.KeyPgDn:
		return Event{Type: EventKey, Key: KeyPageDown}
	case tcell.KeyHome:
		return Event{Type: EventKey, Key: KeyHome}
	case tcell.KeyEnd:
		return Event{Type: EventKey, Key: KeyEnd}
	case tcell.KeyCtrlC:
		return Event{Type: EventKey, Key: KeyCtrlC}
	case tcell.KeyCtrlE:
		return Event{Type: EventKey, Key: KeyCtrlE}
	case tcell.KeyCtrlL:
		return Event{Type: EventKey, Key: KeyCtrlL}
	case tcell.KeyCtrlP:
		return Event{Type: EventKey, Key: KeyCtrlP}
	case tcell.KeyCtrlR:
		return Event{Type: EventKey, Key: KeyCtrlR}
	case tcell.KeyCtrlY:
		return Event{Type: EventKey, Key: KeyCtrlY}
	case tcell.KeyCtrlZ:
		return Event{Type: EventKey, Key: KeyCtrlZ}
	default:
		return Event{Type: EventNone}
	}
}

// convertStyle maps a renderer style to a tcell style.
func convertStyle(s renderer.Style) tcell.Style {
	style := tcell.StyleDefault
	if s.FG != "" {
		style = style.Foreground(tcell.GetColor(s.FG))
	}
	return style.Bold(s.Bold).Reverse(s.Reverse).Dim(s.Dim)
}
