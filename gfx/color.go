package gfx

import "image/color"

// Color is an RGB triple with channels in [0,1].
type Color struct {
	R, G, B float32
}

var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

func RGB(r, g, b float32) Color { return Color{R: r, G: g, B: b} }

// RGBA8 converts c to an opaque 8-bit color, clamping out-of-range channels.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 0xFF}
}

func channel8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
