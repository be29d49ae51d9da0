// Package config defines the viewer configuration schema and its TOML
// loader. Values not present in the file keep their defaults; a missing
// file is not an error.
package config

import (
	"fmt"
	"time"

	"github.com/dshills/slidestorm/internal/engine/viewstate"
)

// Config is the full viewer configuration.
type Config struct {
	Zoom     ZoomConfig     `toml:"zoom"`
	History  HistoryConfig  `toml:"history"`
	Watch    WatchConfig    `toml:"watch"`
	Lua      LuaConfig      `toml:"lua"`
	Render   RenderConfig   `toml:"render"`
	Annotate AnnotateConfig `toml:"annotate"`
}

// ZoomConfig controls zoom behavior.
type ZoomConfig struct {
	// Step is the percentage added or removed by zoom.in / zoom.out.
	Step int `toml:"step"`

	// Default is the zoom level at startup.
	Default int `toml:"default"`
}

// HistoryConfig controls the view-state history.
type HistoryConfig struct {
	// Capacity is the maximum number of snapshots kept.
	Capacity int `toml:"capacity"`
}

// WatchConfig controls deck live reload.
type WatchConfig struct {
	// Enabled turns the deck file watcher on.
	Enabled bool `toml:"enabled"`

	// DebounceMS coalesces bursts of write events, in milliseconds.
	DebounceMS int `toml:"debounce_ms"`
}

// Debounce returns the debounce window as a duration.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// LuaConfig controls presenter script hooks.
type LuaConfig struct {
	// Enabled turns Lua hook loading on.
	Enabled bool `toml:"enabled"`

	// Script overrides the hook script path. Empty means the deck path
	// with a .lua extension.
	Script string `toml:"script"`
}

// RenderConfig controls the on-screen rendition.
type RenderConfig struct {
	// SlideWidth is the layout width in cells at 100% zoom.
	SlideWidth int `toml:"slide_width"`

	// Statusline toggles the bottom status bar.
	Statusline bool `toml:"statusline"`
}

// AnnotateConfig controls freehand drawing.
type AnnotateConfig struct {
	// Color is the stroke color name.
	Color string `toml:"color"`

	// Width is the stroke width in cells.
	Width int `toml:"width"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Zoom:     ZoomConfig{Step: 25, Default: viewstate.DefaultZoom},
		History:  HistoryConfig{Capacity: viewstate.DefaultCapacity},
		Watch:    WatchConfig{Enabled: true, DebounceMS: 250},
		Lua:      LuaConfig{Enabled: true},
		Render:   RenderConfig{SlideWidth: 72, Statusline: true},
		Annotate: AnnotateConfig{Color: "red", Width: 1},
	}
}

// Validate checks the configuration, naming the offending key.
func (c *Config) Validate() error {
	if c.Zoom.Step < 1 {
		return fmt.Errorf("zoom.step must be at least 1, got %d", c.Zoom.Step)
	}
	if c.Zoom.Default < viewstate.MinZoom || c.Zoom.Default > viewstate.MaxZoom {
		return fmt.Errorf("zoom.default must be within [%d, %d], got %d",
			viewstate.MinZoom, viewstate.MaxZoom, c.Zoom.Default)
	}
	if c.History.Capacity < 1 {
		return fmt.Errorf("history.capacity must be at least 1, got %d", c.History.Capacity)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMS)
	}
	if c.Render.SlideWidth < 8 {
		return fmt.Errorf("render.slide_width must be at least 8, got %d", c.Render.SlideWidth)
	}
	if c.Annotate.Width < 1 {
		return fmt.Errorf("annotate.width must be at least 1, got %d", c.Annotate.Width)
	}
	return nil
}
