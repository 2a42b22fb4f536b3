// Package app wires the three illustrations to a HAL: one canvas, renderer
// and controller per scene, a shared frame loop, keyboard input and config
// reloads.
package app

import (
	"fmt"
	"runtime/debug"

	"paintbox/config"
	"paintbox/gfx"
	"paintbox/hal"
	"paintbox/scene"
)

var captionColor = gfx.RGB(0.1, 0.1, 0.1)

type Option func(*System)

// WithReload applies every config received on ch between ticks.
func WithReload(ch <-chan config.Config) Option {
	return func(s *System) { s.reload = ch }
}

// WithAutoplay starts the given scenes right after the first draw.
func WithAutoplay(ids ...scene.ID) Option {
	return func(s *System) { s.autoplay = append(s.autoplay, ids...) }
}

type System struct {
	log  hal.Logger
	loop *scene.FrameLoop

	flower *scene.Flower
	car    *scene.Car
	robot  *scene.Robot

	renderers map[scene.ID]*gfx.Renderer
	ctl       map[scene.ID]*scene.Controller
	input     *Input

	keys     <-chan hal.KeyEvent
	reload   <-chan config.Config
	autoplay []scene.ID

	halted bool
}

// New builds the scenes from cfg and queues their first render. The display
// needs one canvas per scene, in scene.IDs order.
func New(h hal.HAL, cfg config.Config, opts ...Option) (*System, error) {
	d := h.Display()
	if d.Canvases() < len(scene.IDs) {
		return nil, fmt.Errorf("%w: need %d canvases, have %d", hal.ErrNoCanvas, len(scene.IDs), d.Canvases())
	}

	s := &System{
		log:       h.Logger(),
		loop:      scene.NewFrameLoop(),
		flower:    scene.NewFlower(cfg.Flower),
		car:       scene.NewCar(cfg.Car),
		robot:     scene.NewRobot(cfg.Robot),
		renderers: make(map[scene.ID]*gfx.Renderer, len(scene.IDs)),
		ctl:       make(map[scene.ID]*scene.Controller, len(scene.IDs)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if in := h.Input(); in != nil {
		if kb := in.Keyboard(); kb != nil {
			s.keys = kb.Events()
		}
	}

	scenes := map[scene.ID]scene.Scene{
		scene.FlowerID: s.flower,
		scene.CarID:    s.car,
		scene.RobotID:  s.robot,
	}
	ctlOpts := []scene.ControllerOption{scene.WithLogger(s.log)}
	if cfg.Window.Captions {
		ctlOpts = append(ctlOpts, scene.WithCaption(captionColor))
	}
	players := make(map[scene.ID]Player, len(scene.IDs))
	for i, id := range scene.IDs {
		b, err := d.Canvas(i)
		if err != nil {
			return nil, err
		}
		r, err := gfx.NewRenderer(b)
		if err != nil {
			return nil, fmt.Errorf("%s canvas: %w", id, err)
		}
		c := scene.NewController(scenes[id], r, s.loop, ctlOpts...)
		s.renderers[id] = r
		s.ctl[id] = c
		players[id] = c
	}

	s.input = NewInput(players)
	s.input.OnToggle = func(id scene.ID, playing bool) {
		s.log.Info("scene toggled", "scene", id, "playing", playing)
	}
	s.input.OnDirection = func(id scene.ID, side scene.Side) {
		s.log.Info("scene turned", "scene", id, "side", side)
	}

	for _, id := range scene.IDs {
		s.ctl[id].RequestRedraw()
	}
	for _, id := range s.autoplay {
		if c, ok := s.ctl[id]; ok {
			c.Start()
		}
	}
	s.log.Info("scenes ready", "canvases", len(scene.IDs), "autoplay", len(s.autoplay))
	return s, nil
}

func (s *System) Controller(id scene.ID) *scene.Controller { return s.ctl[id] }

func (s *System) Input() *Input { return s.input }

func (s *System) Halted() bool { return s.halted }

// Apply swaps in the scene tunables of cfg. Paused scenes are redrawn so a
// new car color shows up at once.
func (s *System) Apply(cfg config.Config) {
	s.flower.SetParams(cfg.Flower)
	s.car.SetParams(cfg.Car)
	s.robot.SetParams(cfg.Robot)
	for _, id := range scene.IDs {
		s.ctl[id].RequestRedraw()
	}
	s.log.Info("config applied")
}

// Step handles pending keys and reloads, then runs one tick of the frame
// loop. A panic inside a scene halts the system and leaves a report on the
// canvases; later steps do nothing.
func (s *System) Step() (err error) {
	if s.halted {
		return nil
	}
	defer func() {
		if v := recover(); v != nil {
			s.halt(v, debug.Stack())
			err = nil
		}
	}()

	if err := s.drainKeys(); err != nil {
		return err
	}
	s.drainReloads()
	s.loop.Tick()
	return nil
}

func (s *System) drainKeys() error {
	for {
		select {
		case ev := <-s.keys:
			if err := s.input.Handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *System) drainReloads() {
	for {
		select {
		case cfg := <-s.reload:
			s.Apply(cfg)
		default:
			return
		}
	}
}
