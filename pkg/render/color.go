package render

import "image/color"

// FadeColor scales a premultiplied-alpha color toward transparent.
// factor 1 returns the color unchanged, 0 returns fully transparent.
func FadeColor(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: uint8(float64(c.A) * factor),
	}
}

// DarkenColor reduces the brightness of a color, keeping alpha.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
