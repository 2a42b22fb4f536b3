package hal

import (
	"fmt"
	"os"
	"time"

	"paintbox/gfx"
	"paintbox/gfx/soft"

	"github.com/charmbracelet/log"
)

type hostHAL struct {
	opts   Options
	logger *log.Logger
	fbs    []*hostFramebuffer
	canvas []gfx.Backend
	kbd    *hostKeyboard
}

// New returns a host HAL with software canvases. The window runner swaps in
// GPU canvases when Options.Backend asks for them.
func New(opts Options) (HAL, error) {
	return newHost(opts)
}

func newHost(opts Options) (*hostHAL, error) {
	opts = opts.withDefaults()
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas is %dx%d", gfx.ErrNoSurface, opts.Width, opts.Height)
	}
	h := &hostHAL{
		opts:   opts,
		logger: newLogger(opts),
		kbd:    newHostKeyboard(),
	}
	for i := 0; i < opts.Canvases; i++ {
		fb := newHostFramebuffer(opts.Width, opts.Height)
		b, err := soft.New(fb)
		if err != nil {
			return nil, err
		}
		h.fbs = append(h.fbs, fb)
		h.canvas = append(h.canvas, b)
	}
	return h, nil
}

func newLogger(opts Options) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: opts.LogTimestamps,
		TimeFormat:      time.TimeOnly,
		Prefix:          opts.Title,
	})
	if lvl, err := log.ParseLevel(opts.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{h: h} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	h *hostHAL
}

func (d hostDisplay) Canvases() int { return len(d.h.canvas) }

func (d hostDisplay) Canvas(i int) (gfx.Backend, error) {
	if i < 0 || i >= len(d.h.canvas) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoCanvas, i, len(d.h.canvas))
	}
	return d.h.canvas[i], nil
}

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// composeRGBA lays the canvases out left to right into one RGBA buffer of
// (n*w) x h pixels.
func (h *hostHAL) composeRGBA(dst []byte) {
	w, ht := h.opts.Width, h.opts.Height
	rowBytes := len(h.fbs) * w * 4
	for c, fb := range h.fbs {
		for y := 0; y < ht; y++ {
			for x := 0; x < w; x++ {
				r, g, b := fb.pixelRGB(x, y)
				j := y*rowBytes + (c*w+x)*4
				dst[j+0] = r
				dst[j+1] = g
				dst[j+2] = b
				dst[j+3] = 0xFF
			}
		}
	}
}
