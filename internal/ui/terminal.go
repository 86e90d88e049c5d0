package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// WindowConfig describes the window a Terminal presents.
type WindowConfig struct {
	Width  int    // Root console width in cells
	Height int    // Root console height in cells
	Title  string // Shown on the frame in windowed mode
}

// Terminal implements Display on a tcell screen.
// In windowed mode the root console is drawn inside a titled frame when the
// screen has room for one; in fullscreen mode, or on a screen only as large
// as the console, it is drawn flush with the top-left corner.
type Terminal struct {
	screen      tcell.Screen
	root        *Console
	title       string
	fullscreen  bool
	closed      bool
	frameTime   time.Duration
	lastPresent time.Time
	sleep       func(time.Duration)
}

// NewTerminal creates and initializes a terminal screen.
func NewTerminal(cfg WindowConfig) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(s, cfg)
}

// NewTerminalWithScreen initializes the given screen and wraps it.
func NewTerminalWithScreen(s tcell.Screen, cfg WindowConfig) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(DefaultBackground).Foreground(DefaultForeground))
	s.Clear()

	return &Terminal{
		screen: s,
		root:   NewConsole(cfg.Width, cfg.Height),
		title:  cfg.Title,
		sleep:  time.Sleep,
	}, nil
}

// Root returns the console backing the window.
func (t *Terminal) Root() *Console {
	return t.root
}

// Present copies the root console to the screen and shows it,
// waiting out the rest of the frame when a target FPS is set.
func (t *Terminal) Present() {
	if t.closed {
		return
	}

	t.screen.Clear()
	ox, oy := 0, 0
	if t.framed() {
		t.drawFrame()
		ox, oy = 1, 1
	}

	for y := 0; y < t.root.height; y++ {
		for x := 0; x < t.root.width; x++ {
			cell := t.root.cells[y*t.root.width+x]
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(cell.Fg).Background(cell.Bg)
			t.screen.SetContent(ox+x, oy+y, r, nil, style)
		}
	}

	t.throttle()
	t.screen.Show()
}

// framed reports whether the frame is drawn this frame. A screen too small
// to hold the frame around the root console shows the console flush instead.
func (t *Terminal) framed() bool {
	if t.fullscreen {
		return false
	}
	w, h := t.screen.Size()
	return w >= t.root.width+2 && h >= t.root.height+2
}

// drawFrame draws a box around the root console with the title on its top edge.
func (t *Terminal) drawFrame() {
	style := tcell.StyleDefault.Foreground(colorFrame).Background(DefaultBackground)
	right, bottom := t.root.width+1, t.root.height+1

	for x := 1; x < right; x++ {
		t.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		t.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	titleStyle := tcell.StyleDefault.Foreground(colorTitle).Background(DefaultBackground)
	for i, ch := range []rune(t.title) {
		if 2+i >= right {
			break
		}
		t.screen.SetContent(2+i, 0, ch, nil, titleStyle)
	}
}

// throttle sleeps until a full frame interval has passed since the last present.
func (t *Terminal) throttle() {
	now := time.Now()
	if t.frameTime > 0 && !t.lastPresent.IsZero() {
		if wait := t.frameTime - now.Sub(t.lastPresent); wait > 0 {
			t.sleep(wait)
			now = now.Add(wait)
		}
	}
	t.lastPresent = now
}

// IsFullscreen reports whether the frame is hidden.
func (t *Terminal) IsFullscreen() bool {
	return t.fullscreen
}

// SetFullscreen switches between framed and flush drawing.
func (t *Terminal) SetFullscreen(fullscreen bool) {
	if t.fullscreen == fullscreen {
		return
	}
	t.fullscreen = fullscreen
	if !t.closed {
		t.screen.Sync()
	}
}

// Closed reports whether the screen has been closed.
func (t *Terminal) Closed() bool {
	return t.closed
}

// SetTargetFPS caps the rate of Present.
func (t *Terminal) SetTargetFPS(fps int) {
	if fps <= 0 {
		t.frameTime = 0
		return
	}
	t.frameTime = time.Second / time.Duration(fps)
}

// WaitKey blocks until a key event arrives.
// Resize events redraw the screen; other events are skipped.
// Ctrl+C closes the window, as does the screen going away.
func (t *Terminal) WaitKey() (*tcell.EventKey, error) {
	for {
		if t.closed {
			return nil, ErrClosed
		}

		switch ev := t.screen.PollEvent().(type) {
		case nil:
			t.closed = true
			return nil, ErrClosed
		case *tcell.EventKey:
			if isInterrupt(ev) {
				t.closed = true
				return nil, ErrClosed
			}
			return ev, nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// isInterrupt reports whether the key is Ctrl+C.
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
}

// Close finalizes the screen and restores terminal state.
func (t *Terminal) Close() {
	if t.screen == nil {
		return
	}
	t.closed = true
	t.screen.Fini()
	t.screen = nil
}
