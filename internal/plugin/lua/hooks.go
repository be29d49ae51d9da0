package lua

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Hook function names a script may define.
const (
	FnDeckLoad   = "on_deck_load"
	FnSlideEnter = "on_slide_enter"
	FnSlideLeave = "on_slide_leave"
)

// ErrClosed is returned when calling into closed hooks.
var ErrClosed = errors.New("lua hooks closed")

// Hooks owns a sandboxed Lua state holding a loaded presenter script.
type Hooks struct {
	state  *lua.LState
	output io.Writer
	loaded bool
	closed bool
}

// Option configures Hooks.
type Option func(*Hooks)

// WithOutput redirects script print output. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(h *Hooks) { h.output = w }
}

// NewHooks creates an empty, sandboxed hook runtime.
func NewHooks(opts ...Option) *Hooks {
	h := &Hooks{output: os.Stderr}
	for _, opt := range opts {
		opt(h)
	}

	h.state = lua.NewState(lua.Options{SkipOpenLibs: true})
	installSandbox(h.state, h.output)
	return h
}

// LoadFile loads and runs a presenter script so its hook functions are
// defined. A missing file is not an error; Loaded reports false.
func (h *Hooks) LoadFile(path string) error {
	if h.closed {
		return ErrClosed
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("lua script %s: %w", path, err)
	}

	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("lua script %s: %w", path, err)
	}
	h.loaded = true
	return nil
}

// LoadString loads a script from source, mainly for tests.
func (h *Hooks) LoadString(src string) error {
	if h.closed {
		return ErrClosed
	}
	if err := h.state.DoString(src); err != nil {
		return fmt.Errorf("lua script: %w", err)
	}
	h.loaded = true
	return nil
}

// Loaded reports whether a script has been loaded.
func (h *Hooks) Loaded() bool {
	return h.loaded
}

// OnDeckLoad invokes on_deck_load(pages, path) if defined.
func (h *Hooks) OnDeckLoad(pages int, path string) error {
	return h.call(FnDeckLoad, lua.LNumber(pages), lua.LString(path))
}

// OnSlideEnter invokes on_slide_enter(page, title) if defined.
func (h *Hooks) OnSlideEnter(page int, title string) error {
	return h.call(FnSlideEnter, lua.LNumber(page), lua.LString(title))
}

// OnSlideLeave invokes on_slide_leave(page) if defined.
func (h *Hooks) OnSlideLeave(page int) error {
	return h.call(FnSlideLeave, lua.LNumber(page))
}

// call invokes a global hook function with panic recovery. Undefined
// hooks are silently skipped.
func (h *Hooks) call(name string, args ...lua.LValue) (err error) {
	if h.closed {
		return ErrClosed
	}
	if !h.loaded {
		return nil
	}

	fn := h.state.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua hook %s: panic: %v", name, r)
		}
	}()

	h.state.Push(fn)
	for _, arg := range args {
		h.state.Push(arg)
	}
	if perr := h.state.PCall(len(args), 0, nil); perr != nil {
		return fmt.Errorf("lua hook %s: %w", name, perr)
	}
	return nil
}

// Close releases the Lua state. Safe to call more than once.
func (h *Hooks) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.state.Close()
}

// ScriptPath derives the conventional hook script path for a deck file:
// the deck path with its extension replaced by .lua.
func ScriptPath(deckPath string) string {
	if deckPath == "" {
		return ""
	}
	if i := strings.LastIndex(deckPath, "."); i > strings.LastIndexAny(deckPath, "/\\") {
		return deckPath[:i] + ".lua"
	}
	return deckPath + ".lua"
}
