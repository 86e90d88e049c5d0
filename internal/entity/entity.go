// Package entity provides the movable, drawable actors of the game.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// Blocker reports whether a map position can be entered.
type Blocker interface {
	IsBlocked(x, y int) bool
}

// Canvas is the drawing surface an entity renders onto.
type Canvas interface {
	SetForeground(color tcell.Color)
	PutChar(x, y int, r rune)
}

// Entity represents a positioned actor, either the player or an NPC.
type Entity struct {
	ID    uuid.UUID   // Unique identifier, used in trace attributes
	Name  string      // Display name
	X, Y  int         // Current position on the map
	Glyph rune        // Display character
	Color tcell.Color // Foreground color of the glyph
}

// New creates an entity at the given position.
// The position is not validated; callers place entities on open tiles.
func New(x, y int, glyph rune, color tcell.Color) *Entity {
	return &Entity{
		ID:    uuid.New(),
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: color,
	}
}

// MoveBy moves the entity by the given delta if the destination is open.
// A blocked or off-map destination leaves the entity where it is.
// Returns true if the entity moved.
func (e *Entity) MoveBy(dx, dy int, m Blocker) bool {
	newX, newY := e.X+dx, e.Y+dy
	if m.IsBlocked(newX, newY) {
		return false
	}
	e.X, e.Y = newX, newY
	return true
}

// Draw sets the canvas foreground to the entity color and puts its glyph
// at the entity position. The cell background is left alone.
func (e *Entity) Draw(c Canvas) {
	c.SetForeground(e.Color)
	c.PutChar(e.X, e.Y, e.Glyph)
}

// Position returns the current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}
