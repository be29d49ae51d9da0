package dispatcher

import (
	"fmt"

	"github.com/dshills/slidestorm/internal/dispatcher/execctx"
)

// Result is the outcome of handling an action.
type Result struct {
	// Handled reports whether a handler accepted the action.
	Handled bool

	// Err is the handler failure, if any.
	Err error

	// Message is an optional status line notice for the user.
	Message string
}

// Ok returns a successful handled result.
func Ok() Result {
	return Result{Handled: true}
}

// Okf returns a successful result carrying a status message.
func Okf(format string, args ...any) Result {
	return Result{Handled: true, Message: fmt.Sprintf(format, args...)}
}

// Errorf returns a handled result carrying an error.
func Errorf(format string, args ...any) Result {
	return Result{Handled: true, Err: fmt.Errorf(format, args...)}
}

// Handler processes a set of actions.
type Handler interface {
	// Handle executes the action against the viewer context.
	Handle(action Action, ctx *execctx.Context) Result

	// CanHandle reports whether this handler accepts the action name.
	CanHandle(name string) bool

	// Priority orders handler lookup; higher is checked first.
	Priority() int
}

// SimpleHandler adapts a function to Handler for a single action name.
type SimpleHandler struct {
	// ActionName is the exact action this handler accepts.
	ActionName string

	// Fn is the handler function.
	Fn func(action Action, ctx *execctx.Context) Result

	// Prio is the handler priority.
	Prio int
}

// Handle implements Handler.
func (h *SimpleHandler) Handle(action Action, ctx *execctx.Context) Result {
	if h.Fn == nil {
		return Errorf("handler for %q has no function", h.ActionName)
	}
	return h.Fn(action, ctx)
}

// CanHandle implements Handler.
func (h *SimpleHandler) CanHandle(name string) bool {
	return name == h.ActionName
}

// Priority implements Handler.
func (h *SimpleHandler) Priority() int {
	return h.Prio
}
