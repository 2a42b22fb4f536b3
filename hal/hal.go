package hal

import (
	"errors"
	"fmt"

	"paintbox/gfx"
)

// Logger is a leveled, structured logger.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrQuit is returned by a step function to end the run cleanly.
	ErrQuit = errors.New("quit")

	ErrNoCanvas = errors.New("no such canvas")
)

// BackendKind selects how canvases are rasterized.
type BackendKind uint8

const (
	// SoftBackend rasterizes on the CPU into RGB565 framebuffers.
	SoftBackend BackendKind = iota
	// GPUBackend draws through Kage shaders on ebiten images. Window only.
	GPUBackend
)

func (k BackendKind) String() string {
	if k == GPUBackend {
		return "gpu"
	}
	return "soft"
}

func ParseBackendKind(s string) (BackendKind, error) {
	switch s {
	case "soft", "":
		return SoftBackend, nil
	case "gpu":
		return GPUBackend, nil
	}
	return SoftBackend, fmt.Errorf("unknown renderer %q (want soft or gpu)", s)
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event. Printable keys carry Rune with KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display hands out one rendering backend per canvas.
type Display interface {
	Canvases() int
	Canvas(i int) (gfx.Backend, error)
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is everything the app needs from the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// Options describe the host surfaces to create.
type Options struct {
	Title    string
	Canvases int
	Width    int
	Height   int
	// Scale multiplies the window size.
	Scale   int
	Hz      int
	Backend BackendKind

	LogLevel      string
	LogTimestamps bool
}

func (o Options) withDefaults() Options {
	if o.Canvases <= 0 {
		o.Canvases = 1
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Hz <= 0 {
		o.Hz = 60
	}
	if o.Title == "" {
		o.Title = "paintbox"
	}
	return o
}

// NewApp builds the app on a HAL and returns its per-tick step function.
type NewApp func(HAL) (func() error, error)
