package soft

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer exposes a Target to tinyfont.
type Displayer struct {
	T Target
}

func (d *Displayer) Size() (x, y int16) {
	if d.T == nil {
		return 0, 0
	}
	w, h := d.T.Size()
	return int16(w), int16(h)
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.T == nil {
		return
	}
	d.T.SetPixel(int(x), int(y), c)
}

func (d *Displayer) Display() error { return nil }
