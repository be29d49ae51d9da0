// Package dispatcher routes named viewer intents to registered
// handlers. Every user-visible operation (page navigation, zoom,
// rotation, undo/redo, annotation clearing, export) is expressed as an
// Action and dispatched through a single registry.
package dispatcher

// Action is a named intent with optional arguments, such as
// "page.goto" with {"page": 4}.
type Action struct {
	Name string
	Args map[string]any
}

// NewAction creates an argument-less action.
func NewAction(name string) Action {
	return Action{Name: name}
}

// WithArg returns a copy of the action with an argument set.
func (a Action) WithArg(key string, value any) Action {
	args := make(map[string]any, len(a.Args)+1)
	for k, v := range a.Args {
		args[k] = v
	}
	args[key] = value
	return Action{Name: a.Name, Args: args}
}

// IntArg returns the named argument as an int. Float values are
// truncated; anything else reports false.
func (a Action) IntArg(key string) (int, bool) {
	v, ok := a.Args[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// StringArg returns the named argument as a string.
func (a Action) StringArg(key string) (string, bool) {
	s, ok := a.Args[key].(string)
	return s, ok
}
