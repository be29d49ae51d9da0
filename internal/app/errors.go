package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the viewer should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called before SetBackend.
	ErrNoBackend = errors.New("no display backend set")

	// ErrNoDeck indicates no deck file was given.
	ErrNoDeck = errors.New("no deck file specified")
)

// WrapError wraps an error with printf-style context if it is not nil.
// The format string uses fmt.Sprintf verbs; wrapping is handled
// internally, so %w must not appear in it.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
