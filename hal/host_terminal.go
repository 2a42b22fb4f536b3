package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// RunTerminal previews the canvases in the terminal with half-block cells:
// each character shows two stacked pixels, the upper one as foreground and
// the lower one as background. Escape or Ctrl-C ends the run.
func RunTerminal(ctx context.Context, opts Options, newApp NewApp) error {
	if opts.Backend == GPUBackend {
		return fmt.Errorf("%w: the gpu renderer needs a window", ErrNotImplemented)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("terminal preview needs stdout on a terminal")
	}
	h, err := newHost(opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	step, err := newApp(h)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(ctx, screen.PollEvent, events, done)

	t := time.NewTicker(time.Second / time.Duration(h.opts.Hz))
	defer t.Stop()

	img := image.NewRGBA(image.Rect(0, 0, h.opts.Width*len(h.fbs), h.opts.Height))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if kev, ok := keyFromTcell(ev); ok {
					h.kbd.emit(kev)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			h.composeRGBA(img.Pix)
			cols, rows := screen.Size()
			halfBlocks(img, cols, rows, func(x, y int, top, bottom color.RGBA) {
				style := tcell.StyleDefault.
					Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
					Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
				screen.SetContent(x, y, '▀', nil, style)
			})
			screen.Show()
		}
	}
}

// forwardEvents feeds polled events to out until poll returns nil (the
// screen was finalized), ctx ends or done is closed. A full out never blocks
// it past the run.
func forwardEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func keyFromTcell(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	}
	return KeyEvent{}, false
}

// halfBlocks samples img onto a cols x rows character grid, two pixel rows
// per character, keeping the image aspect ratio.
func halfBlocks(img *image.RGBA, cols, rows int, set func(x, y int, top, bottom color.RGBA)) {
	b := img.Bounds()
	if cols <= 0 || rows <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	// Fit the image into cols x (2*rows) virtual pixels.
	vw, vh := cols, rows*2
	if b.Dx()*vh > b.Dy()*vw {
		vh = b.Dy() * vw / b.Dx()
	} else {
		vw = b.Dx() * vh / b.Dy()
	}
	if vw == 0 || vh == 0 {
		return
	}
	sample := func(vx, vy int) color.RGBA {
		return img.RGBAAt(b.Min.X+vx*b.Dx()/vw, b.Min.Y+vy*b.Dy()/vh)
	}
	for y := 0; y*2 < vh; y++ {
		for x := 0; x < vw; x++ {
			top := sample(x, y*2)
			bottom := top
			if y*2+1 < vh {
				bottom = sample(x, y*2+1)
			}
			set(x, y, top, bottom)
		}
	}
}
