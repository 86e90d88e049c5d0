// Package ui provides the render surfaces, the terminal display and the frame renderer.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ErrOutOfBounds is returned when a cell outside a console is requested.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Default cell colors after a clear.
var (
	DefaultForeground = tcell.ColorWhite
	DefaultBackground = tcell.ColorBlack
)

// Cell is one character cell of a console.
type Cell struct {
	Rune rune // 0 means nothing drawn
	Fg   tcell.Color
	Bg   tcell.Color
}

// Console is an in-memory grid of cells that is drawn to and later
// composited onto another console with Blit.
type Console struct {
	width  int
	height int
	cells  []Cell
	fg     tcell.Color // Foreground used by PutChar
}

// NewConsole creates a cleared console of the given size.
func NewConsole(width, height int) *Console {
	c := &Console{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		fg:     DefaultForeground,
	}
	c.Clear()
	return c
}

// Size returns the console dimensions.
func (c *Console) Size() (width, height int) {
	return c.width, c.height
}

// Clear blanks every cell. The current foreground is kept.
func (c *Console) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Fg: DefaultForeground, Bg: DefaultBackground}
	}
}

// SetForeground sets the color used by subsequent PutChar calls.
func (c *Console) SetForeground(color tcell.Color) {
	c.fg = color
}

// Foreground returns the color PutChar currently draws with.
func (c *Console) Foreground() tcell.Color {
	return c.fg
}

// PutChar writes a glyph in the current foreground, keeping the cell background.
// Writes outside the console are dropped.
func (c *Console) PutChar(x, y int, r rune) {
	cell := c.at(x, y)
	if cell == nil {
		return
	}
	cell.Rune = r
	cell.Fg = c.fg
}

// SetBackground sets a cell's background color.
// Writes outside the console are dropped.
func (c *Console) SetBackground(x, y int, color tcell.Color) {
	if cell := c.at(x, y); cell != nil {
		cell.Bg = color
	}
}

// Cell returns the cell at the given position.
func (c *Console) Cell(x, y int) (Cell, error) {
	cell := c.at(x, y)
	if cell == nil {
		return Cell{}, fmt.Errorf("cell (%d,%d) on %dx%d console: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	return *cell, nil
}

// at returns a pointer into the cell slice, or nil when out of bounds.
func (c *Console) at(x, y int) *Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}
