package dispatcher

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/slidestorm/internal/dispatcher/execctx"
)

// ErrNoHandler indicates no registered handler accepted an action.
var ErrNoHandler = errors.New("no handler for action")

// Dispatcher routes actions to the highest-priority handler that
// accepts them.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a handler. Handlers with equal priority are consulted
// in registration order.
func (d *Dispatcher) Register(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers = append(d.handlers, h)
	sort.SliceStable(d.handlers, func(i, j int) bool {
		return d.handlers[i].Priority() > d.handlers[j].Priority()
	})
}

// RegisterFunc adds a function handler for a single action name.
func (d *Dispatcher) RegisterFunc(name string, fn func(Action, *execctx.Context) Result) {
	d.Register(&SimpleHandler{ActionName: name, Fn: fn})
}

// Dispatch routes an action to the first handler that accepts it.
// An unroutable action returns an unhandled result wrapping ErrNoHandler.
func (d *Dispatcher) Dispatch(action Action, ctx *execctx.Context) Result {
	d.mu.RLock()
	handlers := make([]Handler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	for _, h := range handlers {
		if h.CanHandle(action.Name) {
			return h.Handle(action, ctx)
		}
	}
	return Result{Err: fmt.Errorf("%w: %s", ErrNoHandler, action.Name)}
}

// HandlerCount returns the number of registered handlers.
func (d *Dispatcher) HandlerCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers)
}
