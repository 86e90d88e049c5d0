package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Blit composites the whole of src onto dst with its top-left corner at (x, y).
// fgAlpha and bgAlpha are opacities in [0,1]: 1 copies the source, 0 keeps
// the destination, anything between blends the two colors. Source cells
// falling outside dst are clipped.
func Blit(src, dst *Console, x, y int, fgAlpha, bgAlpha float64) {
	fgAlpha = clampAlpha(fgAlpha)
	bgAlpha = clampAlpha(bgAlpha)

	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			d := dst.at(x+sx, y+sy)
			if d == nil {
				continue
			}
			s := src.cells[sy*src.width+sx]

			switch {
			case fgAlpha >= 1:
				d.Rune = s.Rune
				d.Fg = s.Fg
			case fgAlpha > 0 && s.Rune != 0:
				d.Rune = s.Rune
				d.Fg = blendColor(d.Fg, s.Fg, fgAlpha)
			}
			d.Bg = blendColor(d.Bg, s.Bg, bgAlpha)
		}
	}
}

// blendColor mixes from toward to by t in RGB space.
// Colors without an RGB value (such as ColorDefault) snap to the nearer end.
func blendColor(from, to tcell.Color, t float64) tcell.Color {
	if t >= 1 {
		return to
	}
	if t <= 0 {
		return from
	}

	fr, fg, fb := from.RGB()
	tr, tg, tb := to.RGB()
	if fr < 0 || tr < 0 {
		if t < 0.5 {
			return from
		}
		return to
	}

	a := colorful.Color{R: float64(fr) / 255, G: float64(fg) / 255, B: float64(fb) / 255}
	b := colorful.Color{R: float64(tr) / 255, G: float64(tg) / 255, B: float64(tb) / 255}
	r, g, bl := a.BlendRgb(b, t).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func clampAlpha(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
