package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBlitCopy(t *testing.T) {
	src := NewConsole(3, 2)
	src.SetForeground(tcell.ColorYellow)
	src.PutChar(1, 1, '@')
	src.SetBackground(1, 1, ColorDarkGround)

	dst := NewConsole(5, 4)
	dst.PutChar(0, 0, '#')
	dst.PutChar(4, 3, '#')

	Blit(src, dst, 0, 0, 1.0, 1.0)

	cell, _ := dst.Cell(1, 1)
	if cell.Rune != '@' || cell.Fg != tcell.ColorYellow || cell.Bg != ColorDarkGround {
		t.Errorf("Cell(1,1) = %+v, want yellow @ on dark ground", cell)
	}

	// Full opacity copies blanks over what was there.
	if cell, _ := dst.Cell(0, 0); cell.Rune != 0 {
		t.Errorf("Cell(0,0) rune = %c, want blank", cell.Rune)
	}
	// Outside the source area nothing changes.
	if cell, _ := dst.Cell(4, 3); cell.Rune != '#' {
		t.Errorf("Cell(4,3) rune = %c, want #", cell.Rune)
	}
}

func TestBlitOffsetClipped(t *testing.T) {
	src := NewConsole(3, 3)
	src.PutChar(0, 0, 'a')
	src.PutChar(2, 2, 'b')

	dst := NewConsole(4, 4)
	Blit(src, dst, 2, 2, 1.0, 1.0)

	if cell, _ := dst.Cell(2, 2); cell.Rune != 'a' {
		t.Errorf("Cell(2,2) rune = %c, want a", cell.Rune)
	}
	// (2,2) of src lands at (4,4), outside dst: no panic, nothing written.
}

func TestBlitZeroOpacity(t *testing.T) {
	src := NewConsole(2, 2)
	src.PutChar(0, 0, 'a')
	src.SetBackground(0, 0, ColorDarkWall)

	dst := NewConsole(2, 2)
	dst.PutChar(0, 0, 'z')

	Blit(src, dst, 0, 0, 0, 0)

	cell, _ := dst.Cell(0, 0)
	if cell.Rune != 'z' || cell.Bg != DefaultBackground {
		t.Errorf("Cell = %+v, want destination untouched", cell)
	}
}

func TestBlitHalfOpacity(t *testing.T) {
	src := NewConsole(1, 1)
	src.SetBackground(0, 0, tcell.NewRGBColor(200, 100, 0))

	dst := NewConsole(1, 1)
	dst.SetBackground(0, 0, tcell.NewRGBColor(0, 100, 200))

	Blit(src, dst, 0, 0, 1.0, 0.5)

	cell, _ := dst.Cell(0, 0)
	r, g, b := cell.Bg.RGB()
	if r != 100 || g != 100 || b != 100 {
		t.Errorf("Blended background = (%d,%d,%d), want (100,100,100)", r, g, b)
	}
}

func TestBlendColor(t *testing.T) {
	from := tcell.NewRGBColor(0, 0, 0)
	to := tcell.NewRGBColor(255, 255, 255)

	tests := []struct {
		name string
		t    float64
		want tcell.Color
	}{
		{"zero", 0, from},
		{"one", 1, to},
		{"below zero", -1, from},
		{"above one", 2, to},
	}
	for _, tt := range tests {
		if got := blendColor(from, to, tt.t); got != tt.want {
			t.Errorf("%s: blendColor = %v, want %v", tt.name, got, tt.want)
		}
	}

	// Colors without RGB snap to the nearer end.
	if got := blendColor(tcell.ColorDefault, to, 0.7); got != to {
		t.Errorf("blendColor(default, white, 0.7) = %v, want white", got)
	}
	if got := blendColor(tcell.ColorDefault, to, 0.3); got != tcell.ColorDefault {
		t.Errorf("blendColor(default, white, 0.3) = %v, want default", got)
	}
}
