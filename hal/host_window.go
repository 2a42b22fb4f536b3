//go:build cgo || js

package hal

import (
	"errors"
	"image"

	"paintbox/gfx/kage"
	"paintbox/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing every canvas side by side and
// forwards keyboard input. It blocks until the window closes or the step
// function returns ErrQuit.
func RunWindow(opts Options, newApp NewApp) error {
	h, err := newHost(opts)
	if err != nil {
		return err
	}
	g := &hostGame{h: h, newApp: newApp}

	w, ht := h.opts.Width*len(h.fbs), h.opts.Height
	ebiten.SetWindowTitle(h.opts.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*h.opts.Scale, ht*h.opts.Scale)
	ebiten.SetTPS(h.opts.Hz)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h      *hostHAL
	newApp NewApp
	ready  bool
	step   func() error

	// GPU canvases, when enabled.
	gpu []*ebiten.Image

	img   *image.RGBA
	fbImg *ebiten.Image
}

// start builds the app inside the game loop, where ebiten resources can be
// created.
func (g *hostGame) start() error {
	if g.h.opts.Backend == GPUBackend {
		for i := range g.h.canvas {
			img := ebiten.NewImage(g.h.opts.Width, g.h.opts.Height)
			b, err := kage.New(img)
			if err != nil {
				return err
			}
			g.h.canvas[i] = b
			g.gpu = append(g.gpu, img)
		}
	}
	step, err := g.newApp(g.h)
	if err != nil {
		return err
	}
	g.step = step
	g.ready = true
	g.h.logger.Info("window ready", "canvases", len(g.h.canvas), "renderer", g.h.opts.Backend)
	return nil
}

func (g *hostGame) Update() error {
	if !g.ready {
		if err := g.start(); err != nil {
			return err
		}
	}
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if len(g.gpu) > 0 {
		for i, img := range g.gpu {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(i*g.h.opts.Width), 0)
			screen.DrawImage(img, op)
		}
		return
	}

	w, ht := g.h.opts.Width*len(g.h.fbs), g.h.opts.Height
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, ht))
		g.fbImg = ebiten.NewImage(w, ht)
	}
	g.h.composeRGBA(g.img.Pix)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.opts.Width * len(g.h.fbs), g.h.opts.Height
}
