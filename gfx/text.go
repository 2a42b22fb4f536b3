package gfx

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// CaptionFont is the bitmap font used for canvas captions.
var CaptionFont tinyfont.Fonter = &tinyfont.TomThumb

// WriteText draws s with its top-left corner at (x, y) on any pixel display.
func WriteText(d drivers.Displayer, x, y int, s string, c Color) {
	if d == nil || s == "" {
		return
	}
	baseline := int16(y) + int16(CaptionFont.GetYAdvance())
	tinyfont.WriteLine(d, CaptionFont, int16(x), baseline, s, c.RGBA8())
}

// TextWidth reports the advance width of s in pixels.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(CaptionFont, s)
	return int(outbox)
}

// LineHeight is the vertical advance of CaptionFont in pixels.
func LineHeight() int { return int(CaptionFont.GetYAdvance()) }
