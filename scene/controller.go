package scene

import (
	"fmt"

	"paintbox/gfx"

	"github.com/google/uuid"
)

// Logger is the subset of a structured logger the controllers use.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
func (nopLogger) Error(any, ...any) {}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger routes controller events to l.
func WithLogger(l Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCaption draws the scene name and play state in the canvas corner after
// every render.
func WithCaption(color gfx.Color) ControllerOption {
	return func(c *Controller) {
		c.caption = true
		c.captionColor = color
	}
}

// Controller runs one scene: it owns the play flag and the run token, and
// schedules frames on a Scheduler.
//
// A frame callback carries the token it was scheduled with. Stop replaces the
// token, so a callback that fires after Stop (or after Stop then Start) is a
// no-op and at most one self-rescheduling chain exists per scene.
type Controller struct {
	s     Scene
	r     *gfx.Renderer
	sched Scheduler
	log   Logger

	caption      bool
	captionColor gfx.Color

	running  bool
	token    uuid.UUID
	pending  FrameID
	hasFrame bool

	steps  uint64
	frames uint64
}

func NewController(s Scene, r *gfx.Renderer, sched Scheduler, opts ...ControllerOption) *Controller {
	c := &Controller{
		s:     s,
		r:     r,
		sched: sched,
		log:   nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Scene() Scene { return c.s }

func (c *Controller) Running() bool { return c.running }

// Steps is the number of state updates applied so far.
func (c *Controller) Steps() uint64 { return c.steps }

// Frames is the number of renders performed so far.
func (c *Controller) Frames() uint64 { return c.frames }

// Start begins continuous animation. It is a no-op while already running.
func (c *Controller) Start() {
	if c.running {
		return
	}
	c.running = true
	c.token = uuid.New()
	c.cancelPending()
	c.schedule()
	c.log.Debug("start", "scene", c.s.Name(), "token", c.token)
}

// Stop halts the animation after the current frame. It is a no-op while
// stopped.
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.token = uuid.Nil
	c.cancelPending()
	c.log.Debug("stop", "scene", c.s.Name())
}

// Toggle starts a stopped scene and stops a running one. It reports the new
// play state.
func (c *Controller) Toggle() bool {
	if c.running {
		c.Stop()
	} else {
		c.Start()
	}
	return c.running
}

// RequestRedraw schedules one render without a state update. While running
// the next frame already renders, so nothing extra is queued.
func (c *Controller) RequestRedraw() {
	if c.running || c.hasFrame {
		return
	}
	c.schedule()
	c.log.Debug("redraw", "scene", c.s.Name())
}

// SetSide changes the facing of a sided scene. Other scenes ignore it.
func (c *Controller) SetSide(s Side) {
	if sd, ok := c.s.(Sided); ok {
		sd.SetSide(s)
	}
}

// Side reports the facing of a sided scene, FacingRight otherwise.
func (c *Controller) Side() Side {
	if sd, ok := c.s.(Sided); ok {
		return sd.Side()
	}
	return FacingRight
}

func (c *Controller) schedule() {
	tok := c.token
	c.pending = c.sched.RequestFrame(func() { c.frame(tok) })
	c.hasFrame = true
}

func (c *Controller) cancelPending() {
	if c.hasFrame {
		c.sched.CancelFrame(c.pending)
		c.hasFrame = false
	}
}

func (c *Controller) frame(tok uuid.UUID) {
	if tok != c.token {
		return
	}
	c.hasFrame = false
	if c.running {
		c.s.Step()
		c.steps++
		c.schedule()
	}
	c.render()
}

func (c *Controller) render() {
	if err := c.s.Render(c.r); err != nil {
		c.log.Error("render failed", "scene", c.s.Name(), "err", err)
		return
	}
	c.frames++
	if c.caption {
		state := "paused"
		if c.running {
			state = "playing"
		}
		c.r.DrawText(2, 1, fmt.Sprintf("%s %s", c.s.Name(), state), c.captionColor)
	}
}
