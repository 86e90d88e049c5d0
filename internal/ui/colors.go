package ui

import "github.com/gdamore/tcell/v2"

// Terrain background colors.
var (
	ColorDarkWall   = tcell.NewRGBColor(0, 0, 100)
	ColorDarkGround = tcell.NewRGBColor(50, 50, 150)
)

// Frame colors for windowed mode.
var (
	colorFrame = tcell.ColorGray
	colorTitle = tcell.ColorWhite
)
