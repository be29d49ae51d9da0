// Package app wires the viewer components into a running application:
// configuration, deck loading, the view state controller, the action
// dispatcher, live reload, Lua hooks and the render loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dshills/slidestorm/internal/config"
	"github.com/dshills/slidestorm/internal/dispatcher"
	"github.com/dshills/slidestorm/internal/dispatcher/execctx"
	"github.com/dshills/slidestorm/internal/dispatcher/handlers/annotate"
	"github.com/dshills/slidestorm/internal/dispatcher/handlers/view"
	"github.com/dshills/slidestorm/internal/engine/annotation"
	"github.com/dshills/slidestorm/internal/engine/deck"
	"github.com/dshills/slidestorm/internal/engine/viewstate"
	"github.com/dshills/slidestorm/internal/event"
	"github.com/dshills/slidestorm/internal/export"
	"github.com/dshills/slidestorm/internal/plugin/lua"
	"github.com/dshills/slidestorm/internal/renderer"
	"github.com/dshills/slidestorm/internal/renderer/backend"
	"github.com/dshills/slidestorm/internal/watch"
)

// Options configure application startup.
type Options struct {
	// DeckPath is the deck file to present. Required.
	DeckPath string

	// ConfigPath overrides the configuration file location. Empty uses
	// defaults only.
	ConfigPath string

	// LogLevel is the minimum log level name ("debug", "info", "warn",
	// "error").
	LogLevel string

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// NoWatch disables deck live reload regardless of configuration.
	NoWatch bool
}

// App is the assembled viewer.
type App struct {
	cfg   config.Config
	log   *Logger
	disp  *dispatcher.Dispatcher
	bus   *event.Bus
	view  *viewstate.Controller
	deck  *deck.Deck
	notes *annotation.Layer
	hooks *lua.Hooks

	backend  backend.Backend
	renderer *renderer.Renderer
	watcher  *watch.Watcher

	mu       sync.Mutex
	running  bool
	shutdown bool
	message  string
}

// New assembles an application from options and configuration. The
// display backend is attached separately with SetBackend so tests can
// run against an in-memory screen.
func New(opts Options) (*App, error) {
	if opts.DeckPath == "" {
		return nil, ErrNoDeck
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, WrapError(err, "config %s", opts.ConfigPath)
	}

	log := NewLogger(ParseLogLevel(opts.LogLevel), opts.LogOutput)

	d, err := deck.Load(opts.DeckPath)
	if err != nil {
		return nil, WrapError(err, "load deck %s", opts.DeckPath)
	}

	ctrl, err := viewstate.New(d.PageCount(),
		viewstate.WithCapacity(cfg.History.Capacity),
		viewstate.WithInitialState(viewstate.ViewState{Page: 1, Zoom: cfg.Zoom.Default}),
	)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:   cfg,
		log:   log,
		bus:   event.NewBus(),
		view:  ctrl,
		deck:  d,
		notes: annotation.NewLayer(),
	}

	a.disp = dispatcher.New()
	a.disp.Register(view.NewHandler(cfg.Zoom.Step))
	a.disp.Register(annotate.NewHandler())
	a.disp.RegisterFunc("app.quit", func(dispatcher.Action, *execctx.Context) dispatcher.Result {
		return dispatcher.Result{Handled: true, Err: ErrQuit}
	})
	a.disp.RegisterFunc("deck.reload", func(dispatcher.Action, *execctx.Context) dispatcher.Result {
		return a.reloadDeck()
	})
	a.disp.RegisterFunc("export.print", func(dispatcher.Action, *execctx.Context) dispatcher.Result {
		return a.exportText()
	})
	a.disp.RegisterFunc("export.html", func(dispatcher.Action, *execctx.Context) dispatcher.Result {
		return a.exportHTML()
	})

	if cfg.Lua.Enabled {
		a.hooks = lua.NewHooks(lua.WithOutput(log.output))
		script := cfg.Lua.Script
		if script == "" {
			script = lua.ScriptPath(opts.DeckPath)
		}
		if err := a.hooks.LoadFile(script); err != nil {
			log.Warn("lua: %v", err)
		} else if a.hooks.Loaded() {
			log.Info("lua: loaded %s", script)
		}
		a.wireHooks()
	}

	if cfg.Watch.Enabled && !opts.NoWatch {
		w, werr := watch.New(opts.DeckPath, cfg.Watch.Debounce())
		if werr != nil {
			log.Warn("watch: %v", werr)
		} else {
			a.watcher = w
		}
	}

	return a, nil
}

// SetBackend attaches the display backend and creates the renderer.
func (a *App) SetBackend(b backend.Backend) {
	a.backend = b
	a.renderer = renderer.New(b, a.cfg.Render.SlideWidth, a.cfg.Render.Statusline)
}

// State returns the current view state.
func (a *App) State() viewstate.ViewState {
	return a.view.State()
}

// Deck returns the currently loaded deck.
func (a *App) Deck() *deck.Deck {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deck
}

// Dispatch routes an action through the dispatcher, publishes the
// resulting view events and redraws. It returns ErrQuit when the
// action ends the session.
func (a *App) Dispatch(action dispatcher.Action) error {
	prev := a.view.State()
	res := a.disp.Dispatch(action, a.execContext())

	switch {
	case res.Err != nil && errors.Is(res.Err, ErrQuit):
		return ErrQuit
	case res.Err != nil:
		a.setMessage(res.Err.Error())
		a.log.Warn("action %s: %v", action.Name, res.Err)
	case res.Message != "":
		a.setMessage(res.Message)
	default:
		a.setMessage("")
	}

	a.publishTransition(prev, a.view.State(), action.Name)
	a.render()
	return nil
}

// Run enters the event loop. It blocks until the session ends and
// returns nil on a normal quit.
func (a *App) Run() error {
	if a.backend == nil {
		return ErrNoBackend
	}

	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	a.running = true
	a.mu.Unlock()

	if err := a.backend.Init(); err != nil {
		return WrapError(err, "backend init")
	}
	defer a.backend.Fini()

	a.bus.Publish(event.Event{
		Topic:   event.TopicDeckLoaded,
		Payload: event.DeckLoaded{Path: a.deck.Path(), Pages: a.deck.PageCount()},
	})
	a.bus.Publish(event.Event{
		Topic:   event.TopicSlideEntered,
		Payload: event.SlideEntered{Page: 1, Title: a.deck.Title(1)},
	})
	a.render()

	events := make(chan backend.Event)
	pumpDone := make(chan struct{})
	defer func() {
		// Unblock the pump: a posted quit wakes PollEvent, the closed
		// channel releases a pending send.
		close(pumpDone)
		a.backend.PostEvent(backend.Event{Type: backend.EventQuit})
	}()
	go func() {
		for {
			ev := a.backend.PollEvent()
			select {
			case events <- ev:
			case <-pumpDone:
				return
			}
			if ev.Type == backend.EventQuit {
				return
			}
		}
	}()

	var watchEvents <-chan string
	var watchErrs <-chan error
	if a.watcher != nil {
		watchEvents = a.watcher.Events()
		watchErrs = a.watcher.Errors()
	}

	for {
		select {
		case ev := <-events:
			if err := a.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}

		case path, ok := <-watchEvents:
			if !ok {
				watchEvents = nil
				continue
			}
			a.log.Info("deck changed on disk: %s", path)
			prev := a.view.State()
			res := a.reloadDeck()
			if res.Err != nil {
				a.setMessage(res.Err.Error())
			} else {
				a.setMessage(res.Message)
			}
			a.publishTransition(prev, a.view.State(), "deck.reload")
			a.render()

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			a.log.Warn("watch: %v", err)
		}
	}
}

// Shutdown releases the watcher and Lua state. Safe to call more than
// once.
func (a *App) Shutdown() {
	a.mu.Lock()
	if a.shutdown {
		a.mu.Unlock()
		return
	}
	a.shutdown = true
	a.mu.Unlock()

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("watch close: %v", err)
		}
	}
	if a.hooks != nil {
		a.hooks.Close()
	}
}

func (a *App) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventQuit:
		return ErrQuit

	case backend.EventResize:
		a.render()

	case backend.EventKey:
		action, ok := translateKey(ev)
		if !ok {
			return nil
		}
		return a.Dispatch(action)

	case backend.EventMouse:
		a.handleMouse(ev)
	}
	return nil
}

// handleMouse turns left-button drags into freehand strokes on the
// current page. The statusline row is not drawable.
func (a *App) handleMouse(ev backend.Event) {
	_, h := a.backend.Size()
	onStatus := a.cfg.Render.Statusline && ev.MouseY >= h-1

	switch ev.Button {
	case backend.MouseLeft:
		if onStatus {
			return
		}
		p := annotation.Point{X: ev.MouseX, Y: ev.MouseY}
		if a.notes.Drawing() {
			a.notes.Extend(p)
		} else {
			a.notes.Begin(a.view.State().Page, p, a.cfg.Annotate.Color, a.cfg.Annotate.Width)
		}
		a.render()

	case backend.MouseRelease:
		if a.notes.Drawing() {
			a.notes.End()
			a.render()
		}
	}
}

// reloadDeck re-reads the deck file, re-clamps the view to the new
// page count and announces the load on the bus.
func (a *App) reloadDeck() dispatcher.Result {
	a.mu.Lock()
	path := a.deck.Path()
	a.mu.Unlock()

	d, err := deck.Load(path)
	if err != nil {
		return dispatcher.Result{Handled: true, Err: WrapError(err, "reload %s", path)}
	}

	a.mu.Lock()
	a.deck = d
	a.mu.Unlock()

	if err := a.view.SetTotalPages(d.PageCount()); err != nil {
		return dispatcher.Result{Handled: true, Err: err}
	}

	a.bus.Publish(event.Event{
		Topic:   event.TopicDeckLoaded,
		Payload: event.DeckLoaded{Path: path, Pages: d.PageCount()},
	})

	return dispatcher.Okf("reloaded %s (%d pages)", path, d.PageCount())
}

func (a *App) exportText() dispatcher.Result {
	path := exportPath(a.deck.Path(), ".txt")
	f, err := os.Create(path)
	if err != nil {
		return dispatcher.Result{Handled: true, Err: err}
	}
	defer f.Close()

	if err := export.Text(f, a.deck); err != nil {
		return dispatcher.Result{Handled: true, Err: err}
	}
	a.log.Info("exported text to %s", path)
	return dispatcher.Okf("exported %s", path)
}

func (a *App) exportHTML() dispatcher.Result {
	path := exportPath(a.deck.Path(), ".html")
	f, err := os.Create(path)
	if err != nil {
		return dispatcher.Result{Handled: true, Err: err}
	}
	defer f.Close()

	h := export.NewHTML(a.deck.Title(1))
	if err := h.Write(f, a.deck); err != nil {
		return dispatcher.Result{Handled: true, Err: err}
	}
	a.log.Info("exported html to %s", path)
	return dispatcher.Okf("exported %s", path)
}

// exportPath swaps the deck file's extension for the export format's.
func exportPath(deckPath, ext string) string {
	if i := strings.LastIndex(deckPath, "."); i > strings.LastIndexAny(deckPath, "/\\") {
		return deckPath[:i] + ext
	}
	return deckPath + ext
}

// publishTransition emits view.changed plus slide enter/leave events
// for a state change. No-op when the state is unchanged.
func (a *App) publishTransition(prev, cur viewstate.ViewState, cause string) {
	if prev == cur {
		return
	}

	a.bus.Publish(event.Event{
		Topic:   event.TopicViewChanged,
		Payload: event.ViewChanged{Previous: prev, Current: cur, Cause: cause},
	})

	if prev.Page != cur.Page {
		a.bus.Publish(event.Event{
			Topic:   event.TopicSlideLeft,
			Payload: event.SlideLeft{Page: prev.Page},
		})
		a.bus.Publish(event.Event{
			Topic:   event.TopicSlideEntered,
			Payload: event.SlideEntered{Page: cur.Page, Title: a.Deck().Title(cur.Page)},
		})
	}
}

// wireHooks forwards bus events to the Lua hook functions.
func (a *App) wireHooks() {
	a.bus.Subscribe(event.TopicDeckLoaded, func(e event.Event) {
		if p, ok := e.Payload.(event.DeckLoaded); ok {
			if err := a.hooks.OnDeckLoad(p.Pages, p.Path); err != nil {
				a.log.Warn("%v", err)
			}
		}
	})
	a.bus.Subscribe(event.TopicSlideEntered, func(e event.Event) {
		if p, ok := e.Payload.(event.SlideEntered); ok {
			if err := a.hooks.OnSlideEnter(p.Page, p.Title); err != nil {
				a.log.Warn("%v", err)
			}
		}
	})
	a.bus.Subscribe(event.TopicSlideLeft, func(e event.Event) {
		if p, ok := e.Payload.(event.SlideLeft); ok {
			if err := a.hooks.OnSlideLeave(p.Page); err != nil {
				a.log.Warn("%v", err)
			}
		}
	})
}

func (a *App) execContext() *execctx.Context {
	return &execctx.Context{
		View:        a.view,
		Deck:        a.Deck(),
		Annotations: a.notes,
		Bus:         a.bus,
	}
}

func (a *App) setMessage(msg string) {
	a.mu.Lock()
	a.message = msg
	a.mu.Unlock()
}

// Message returns the transient statusline message.
func (a *App) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

func (a *App) render() {
	if a.renderer == nil {
		return
	}

	st := a.view.State()
	d := a.Deck()
	slide, ok := d.Slide(st.Page)
	if !ok {
		a.log.Error("no slide for page %d", st.Page)
		return
	}

	a.renderer.Render(renderer.Frame{
		Slide:      slide,
		State:      st,
		TotalPages: d.PageCount(),
		Strokes:    a.notes.StrokesFor(st.Page),
		CanUndo:    a.view.CanUndo(),
		CanRedo:    a.view.CanRedo(),
		Message:    a.Message(),
	})
}

// String describes the app for logs.
func (a *App) String() string {
	return fmt.Sprintf("slidestorm[%s]", a.Deck().Path())
}
