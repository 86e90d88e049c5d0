// Package input maps key presses to game actions.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rouge/internal/entity"
	"github.com/samdwyer/rouge/internal/world"
)

// Action is the outcome of handling one key.
type Action int

const (
	// Continue keeps the game loop running.
	Continue Action = iota
	// Exit ends the game loop.
	Exit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Fullscreener toggles the display mode.
type Fullscreener interface {
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
}

// HandleKey applies a single key press and reports whether the game should go on.
//
//	Alt+Enter   toggle fullscreen
//	Escape      exit
//	arrow keys  move the player one tile
//
// Any other key is ignored.
func HandleKey(ev *tcell.EventKey, m *world.Map, player *entity.Entity, fs Fullscreener) Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			fs.SetFullscreen(!fs.IsFullscreen())
		}
	case tcell.KeyEscape:
		return Exit

	case tcell.KeyUp:
		player.MoveBy(0, -1, m)
	case tcell.KeyDown:
		player.MoveBy(0, 1, m)
	case tcell.KeyLeft:
		player.MoveBy(-1, 0, m)
	case tcell.KeyRight:
		player.MoveBy(1, 0, m)
	}
	return Continue
}
