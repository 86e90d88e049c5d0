package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned by WaitKey once the display has been closed.
var ErrClosed = errors.New("display closed")

// Display is the window the game draws into and reads keys from.
type Display interface {
	// Root returns the console backing the visible window.
	Root() *Console
	// Present flushes the root console to the window.
	Present()
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
	// Closed reports whether the window has been closed.
	Closed() bool
	// SetTargetFPS caps how often Present may run. Zero means no cap.
	SetTargetFPS(fps int)
	// WaitKey blocks until a key is pressed.
	WaitKey() (*tcell.EventKey, error)
	Close()
}
