package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/dshills/slidestorm/internal/dispatcher"
	"github.com/dshills/slidestorm/internal/renderer/backend"
)

const testDeck = `# Welcome
first slide body
---
# Middle
second slide body
---
# Done
third slide body
`

func writeDeck(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestApp(t *testing.T, deckPath string) *App {
	t.Helper()
	a, err := New(Options{
		DeckPath:  deckPath,
		LogLevel:  "error",
		LogOutput: &bytes.Buffer{},
		NoWatch:   true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Shutdown)
	return a
}

func TestNewRequiresDeck(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, ErrNoDeck) {
		t.Errorf("err = %v, want ErrNoDeck", err)
	}
}

func TestNewMissingDeckFile(t *testing.T) {
	if _, err := New(Options{DeckPath: filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Error("expected error for missing deck file")
	}
}

func TestDispatchNavigation(t *testing.T) {
	a := newTestApp(t, writeDeck(t, "talk.txt", testDeck))

	if err := a.Dispatch(dispatcher.NewAction("page.next")); err != nil {
		t.Fatal(err)
	}
	if got := a.State().Page; got != 2 {
		t.Errorf("page = %d, want 2", got)
	}

	if err := a.Dispatch(dispatcher.NewAction("page.last")); err != nil {
		t.Fatal(err)
	}
	if got := a.State().Page; got != 3 {
		t.Errorf("page = %d, want 3", got)
	}

	if err := a.Dispatch(dispatcher.NewAction("history.undo")); err != nil {
		t.Fatal(err)
	}
	if got := a.State().Page; got != 2 {
		t.Errorf("page after undo = %d, want 2", got)
	}
}

func TestDispatchQuit(t *testing.T) {
	a := newTestApp(t, writeDeck(t, "talk.txt", testDeck))

	if err := a.Dispatch(dispatcher.NewAction("app.quit")); !errors.Is(err, ErrQuit) {
		t.Errorf("err = %v, want ErrQuit", err)
	}
}

func TestDispatchUnknownActionSetsMessage(t *testing.T) {
	a := newTestApp(t, writeDeck(t, "talk.txt", testDeck))

	if err := a.Dispatch(dispatcher.NewAction("does.not.exist")); err != nil {
		t.Fatal(err)
	}
	if a.Message() == "" {
		t.Error("expected an error message for an unrouted action")
	}
}

func TestRunWithoutBackend(t *testing.T) {
	a := newTestApp(t, writeDeck(t, "talk.txt", testDeck))

	if err := a.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("err = %v, want ErrNoBackend", err)
	}
}

func TestRunEventLoop(t *testing.T) {
	a := newTestApp(t, writeDeck(t, "talk.txt", testDeck))

	b := backend.NewMemory(80, 24)
	a.SetBackend(b)

	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'n'})
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'n'})
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'u'})
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'q'})

	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := a.State().Page; got != 2 {
		t.Errorf("page = %d, want 2", got)
	}
	if !strings.Contains(b.Row(23), "2/3") {
		t.Errorf("statusline %q missing page indicator", b.Row(23))
	}
}

func TestRunReleasesEventPump(t *testing.T) {
	a := newTestApp(t, writeDeck(t, "talk.txt", testDeck))

	b := backend.NewMemory(80, 24)
	a.SetBackend(b)
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'q'})

	before := runtime.NumGoroutine()
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The poll goroutine exits shortly after Run returns.
	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := runtime.NumGoroutine(); n > before {
		t.Errorf("goroutines = %d after Run, want at most %d", n, before)
	}
}

func TestRunMouseDrawsStroke(t *testing.T) {
	a := newTestApp(t, writeDeck(t, "talk.txt", testDeck))

	b := backend.NewMemory(80, 24)
	a.SetBackend(b)

	b.PostEvent(backend.Event{Type: backend.EventMouse, Button: backend.MouseLeft, MouseX: 10, MouseY: 5})
	b.PostEvent(backend.Event{Type: backend.EventMouse, Button: backend.MouseLeft, MouseX: 11, MouseY: 5})
	b.PostEvent(backend.Event{Type: backend.EventMouse, Button: backend.MouseRelease})
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'q'})

	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	strokes := a.notes.StrokesFor(1)
	if len(strokes) != 1 {
		t.Fatalf("strokes = %d, want 1", len(strokes))
	}
	if len(strokes[0].Points) != 2 {
		t.Errorf("points = %d, want 2", len(strokes[0].Points))
	}
	if b.Cell(10, 5).Rune != '█' {
		t.Errorf("stroke cell not drawn, got %q", b.Cell(10, 5).Rune)
	}
}

func TestDeckReloadClampsPage(t *testing.T) {
	path := writeDeck(t, "talk.txt", testDeck)
	a := newTestApp(t, path)

	if err := a.Dispatch(dispatcher.NewAction("page.last")); err != nil {
		t.Fatal(err)
	}
	if got := a.State().Page; got != 3 {
		t.Fatalf("page = %d, want 3", got)
	}

	if err := os.WriteFile(path, []byte("# Only Slide\nbody\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := a.Dispatch(dispatcher.NewAction("deck.reload")); err != nil {
		t.Fatal(err)
	}

	if got := a.Deck().PageCount(); got != 1 {
		t.Errorf("pages = %d, want 1", got)
	}
	if got := a.State().Page; got != 1 {
		t.Errorf("page = %d, want 1", got)
	}
}

func TestExportText(t *testing.T) {
	path := writeDeck(t, "talk.txt", testDeck)
	a := newTestApp(t, path)

	if err := a.Dispatch(dispatcher.NewAction("export.print")); err != nil {
		t.Fatal(err)
	}

	out, err := os.ReadFile(exportPath(path, ".txt"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(out), "Slide 1/3: Welcome") {
		t.Errorf("export missing slide header:\n%s", out)
	}
}

func TestExportHTML(t *testing.T) {
	path := writeDeck(t, "talk.txt", testDeck)
	a := newTestApp(t, path)

	if err := a.Dispatch(dispatcher.NewAction("export.html")); err != nil {
		t.Fatal(err)
	}

	out, err := os.ReadFile(exportPath(path, ".html"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	for _, want := range []string{`id="slide-1"`, `id="slide-3"`, "second slide body"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestLuaHookFiresOnSlideEnter(t *testing.T) {
	dir := t.TempDir()
	deckPath := filepath.Join(dir, "talk.txt")
	if err := os.WriteFile(deckPath, []byte(testDeck), 0o644); err != nil {
		t.Fatal(err)
	}
	script := `function on_slide_enter(page, title)
  print("entered " .. page .. ": " .. title)
end`
	if err := os.WriteFile(filepath.Join(dir, "talk.lua"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	a, err := New(Options{DeckPath: deckPath, LogLevel: "error", LogOutput: &out, NoWatch: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Shutdown()

	if err := a.Dispatch(dispatcher.NewAction("page.next")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "entered 2: Middle") {
		t.Errorf("hook output missing, got:\n%s", out.String())
	}
}

func TestExportPath(t *testing.T) {
	tests := []struct {
		in, ext, want string
	}{
		{"talk.txt", ".html", "talk.html"},
		{"talk", ".txt", "talk.txt"},
		{"dir.d/talk", ".txt", "dir.d/talk.txt"},
		{"dir/talk.md", ".txt", "dir/talk.txt"},
	}
	for _, tt := range tests {
		if got := exportPath(tt.in, tt.ext); got != tt.want {
			t.Errorf("exportPath(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
		}
	}
}
