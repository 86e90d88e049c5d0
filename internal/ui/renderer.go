package ui

import (
	"github.com/samdwyer/rouge/internal/entity"
	"github.com/samdwyer/rouge/internal/world"
)

// Renderer handles drawing the game to the display.
type Renderer struct {
	display Display
}

// NewRenderer creates a new renderer for the given display.
func NewRenderer(display Display) *Renderer {
	return &Renderer{display: display}
}

// Render draws one frame: entities and terrain go onto the off-screen
// console, which is then composited onto the display root and presented.
// The frame is presented after it is drawn, so the window always shows
// the current state.
func (r *Renderer) Render(con *Console, m *world.Map, roster *entity.Roster) {
	con.Clear()

	// Entities set glyphs only
	for _, e := range roster.All() {
		e.Draw(con)
	}

	// Terrain sets backgrounds only
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.BlocksSight(x, y) {
				con.SetBackground(x, y, ColorDarkWall)
			} else {
				con.SetBackground(x, y, ColorDarkGround)
			}
		}
	}

	Blit(con, r.display.Root(), 0, 0, 1.0, 1.0)
	r.display.Present()
}
