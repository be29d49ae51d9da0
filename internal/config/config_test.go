package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() invalid: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load of absent file failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slidestorm.toml")
	content := `
[zoom]
step = 10

[history]
capacity = 500

[watch]
enabled = false

[annotate]
color = "blue"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Zoom.Step != 10 {
		t.Errorf("zoom.step = %d, want 10", cfg.Zoom.Step)
	}
	if cfg.History.Capacity != 500 {
		t.Errorf("history.capacity = %d, want 500", cfg.History.Capacity)
	}
	if cfg.Watch.Enabled {
		t.Error("watch.enabled = true, want false")
	}
	if cfg.Annotate.Color != "blue" {
		t.Errorf("annotate.color = %q, want blue", cfg.Annotate.Color)
	}
	// Untouched sections keep their defaults.
	if cfg.Render.SlideWidth != Default().Render.SlideWidth {
		t.Errorf("render.slide_width = %d, want default", cfg.Render.SlideWidth)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("zoom = {{{"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestValidateNamesOffendingKey(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"zoom step", func(c *Config) { c.Zoom.Step = 0 }, "zoom.step"},
		{"zoom default", func(c *Config) { c.Zoom.Default = 9000 }, "zoom.default"},
		{"history capacity", func(c *Config) { c.History.Capacity = 0 }, "history.capacity"},
		{"debounce", func(c *Config) { c.Watch.DebounceMS = -1 }, "watch.debounce_ms"},
		{"slide width", func(c *Config) { c.Render.SlideWidth = 2 }, "render.slide_width"},
		{"annotate width", func(c *Config) { c.Annotate.Width = 0 }, "annotate.width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("error %q does not name key %q", err, tt.wantKey)
			}
		})
	}
}

func TestLoadReaderInvalidValues(t *testing.T) {
	_, err := LoadReader(strings.NewReader("[history]\ncapacity = -5\n"))
	if err == nil {
		t.Error("invalid capacity should fail validation")
	}
}

func TestWatchDebounceDuration(t *testing.T) {
	w := WatchConfig{DebounceMS: 250}
	if got := w.Debounce().Milliseconds(); got != 250 {
		t.Errorf("Debounce() = %dms, want 250ms", got)
	}
}
