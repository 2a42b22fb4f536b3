package hal

import (
	"paintbox/gfx/soft"
)

// hostFramebuffer is one RGB565 canvas. Rendering and compose both run on
// the runner goroutine, so the buffer is not locked.
type hostFramebuffer struct {
	soft.RGB565Target
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{RGB565Target: soft.RGB565Target{
		Buf:    make([]byte, stride*height),
		Stride: stride,
		W:      width,
		H:      height,
	}}
}

// pixelRGB returns the 8-bit color at (x, y).
func (f *hostFramebuffer) pixelRGB(x, y int) (r, g, b uint8) {
	off := y*f.Stride + x*2
	return soft.RGB888(uint16(f.Buf[off]) | uint16(f.Buf[off+1])<<8)
}
