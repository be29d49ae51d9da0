// Package lua runs presenter hook scripts.
//
// A deck may ship a Lua script (by convention the deck path with a .lua
// extension) defining any of these global functions:
//
//	function on_deck_load(pages, path) end
//	function on_slide_enter(page, title) end
//	function on_slide_leave(page) end
//
// The viewer calls them as it navigates. Scripts run in a restricted
// state: only the base, table, string and math libraries are opened,
// file loading primitives are removed, and print output is redirected
// to the viewer's log sink.
//
// All hook calls happen on the viewer's event loop goroutine; the LState
// is not goroutine-safe and Hooks relies on that single-caller
// discipline rather than an internal executor.
package lua
