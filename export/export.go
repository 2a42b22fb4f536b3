// Package export renders scenes off screen and encodes the frames as PNG or
// animated GIF.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"

	"paintbox/gfx"
	"paintbox/gfx/soft"
	"paintbox/scene"

	"golang.org/x/image/draw"
)

var ErrNoFrames = errors.New("export: no frames")

// Options control the size of exported frames.
type Options struct {
	Width, Height int
	// Supersample renders at this multiple of the output size and filters
	// the result down, which smooths polygon edges.
	Supersample int
}

func (o Options) factor() int {
	if o.Supersample < 1 {
		return 1
	}
	return o.Supersample
}

// Recorder renders frames of one scene into an offscreen RGBA canvas.
type Recorder struct {
	s    scene.Scene
	opts Options
	r    *gfx.Renderer
	raw  *image.RGBA
}

func NewRecorder(s scene.Scene, opts Options) (*Recorder, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: output is %dx%d", gfx.ErrNoSurface, opts.Width, opts.Height)
	}
	k := opts.factor()
	raw := image.NewRGBA(image.Rect(0, 0, opts.Width*k, opts.Height*k))
	b, err := soft.New(&soft.RGBATarget{Img: raw})
	if err != nil {
		return nil, err
	}
	r, err := gfx.NewRenderer(b)
	if err != nil {
		return nil, err
	}
	return &Recorder{s: s, opts: opts, r: r, raw: raw}, nil
}

// Frame renders the current state without advancing it.
func (rec *Recorder) Frame() (*image.RGBA, error) {
	if err := rec.s.Render(rec.r); err != nil {
		return nil, fmt.Errorf("render %s: %w", rec.s.Name(), err)
	}
	return Downscale(rec.raw, rec.opts.Width, rec.opts.Height), nil
}

// Record steps the scene n times and captures a frame after each step.
// progress, when non-nil, is called once per captured frame.
func (rec *Recorder) Record(n int, progress func()) ([]*image.RGBA, error) {
	frames := make([]*image.RGBA, 0, n)
	for i := 0; i < n; i++ {
		rec.s.Step()
		img, err := rec.Frame()
		if err != nil {
			return frames, err
		}
		frames = append(frames, img)
		if progress != nil {
			progress()
		}
	}
	return frames, nil
}

// Downscale filters src to w x h. A source already at that size is copied.
func Downscale(src *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// FromRGB565 converts a little-endian RGB565 framebuffer to RGBA.
func FromRGB565(buf []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+1 < len(buf) && i/2 < w*h; i += 2 {
		p := uint16(buf[i]) | uint16(buf[i+1])<<8
		r, g, b := soft.RGB888(p)
		j := i * 2
		img.Pix[j+0] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = b
		img.Pix[j+3] = 0xFF
	}
	return img
}

func PNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// GIF encodes frames as a looping animation. delay is in hundredths of a
// second per frame.
func GIF(w io.Writer, frames []*image.RGBA, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		p := image.NewPaletted(f.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, f.Bounds(), f, f.Bounds().Min)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}
