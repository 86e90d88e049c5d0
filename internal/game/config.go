package game

import (
	"github.com/samdwyer/rouge/internal/ui"
	"github.com/samdwyer/rouge/internal/world"
)

// Window and map defaults
const (
	DefaultScreenWidth  = 80
	DefaultScreenHeight = 50
	DefaultTargetFPS    = 60
	DefaultTitle        = "Rouge?"
)

// Config holds game configuration options.
type Config struct {
	ScreenWidth  int    // Window width in cells
	ScreenHeight int    // Window height in cells
	MapWidth     int    // Map and off-screen console width
	MapHeight    int    // Map and off-screen console height
	TargetFPS    int    // Frame rate requested from the display; 0 means uncapped
	Title        string // Window title
	// Tracing enables spans on the global tracer provider.
	// When false the game traces to a no-op tracer.
	Tracing bool
}

// DefaultConfig returns the standard 80x50 window over an 80x45 map.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		MapWidth:     world.DefaultWidth,
		MapHeight:    world.DefaultHeight,
		TargetFPS:    DefaultTargetFPS,
		Title:        DefaultTitle,
		Tracing:      true,
	}
}

// Window returns the display settings for this configuration.
func (c Config) Window() ui.WindowConfig {
	return ui.WindowConfig{
		Width:  c.ScreenWidth,
		Height: c.ScreenHeight,
		Title:  c.Title,
	}
}
