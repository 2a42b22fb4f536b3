package app

import (
	"errors"
	"image"
	"io"
	"testing"

	"paintbox/config"
	"paintbox/gfx"
	"paintbox/gfx/soft"
	"paintbox/hal"
	"paintbox/scene"

	"github.com/charmbracelet/log"
)

type testHAL struct {
	imgs     []*image.RGBA
	backends []gfx.Backend
	keys     chan hal.KeyEvent
}

func newTestHAL(t *testing.T, canvases, size int) *testHAL {
	t.Helper()
	h := &testHAL{keys: make(chan hal.KeyEvent, 8)}
	for i := 0; i < canvases; i++ {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		b, err := soft.New(&soft.RGBATarget{Img: img})
		if err != nil {
			t.Fatalf("soft.New: %v", err)
		}
		h.imgs = append(h.imgs, img)
		h.backends = append(h.backends, b)
	}
	return h
}

func (h *testHAL) Logger() hal.Logger     { return log.New(io.Discard) }
func (h *testHAL) Display() hal.Display   { return h }
func (h *testHAL) Input() hal.Input       { return h }
func (h *testHAL) Keyboard() hal.Keyboard { return h }

func (h *testHAL) Events() <-chan hal.KeyEvent { return h.keys }
func (h *testHAL) Canvases() int               { return len(h.backends) }
func (h *testHAL) Canvas(i int) (gfx.Backend, error) {
	if i < 0 || i >= len(h.backends) {
		return nil, hal.ErrNoCanvas
	}
	return h.backends[i], nil
}

func newTestSystem(t *testing.T, opts ...Option) (*System, *testHAL) {
	t.Helper()
	h := newTestHAL(t, 3, 48)
	cfg := config.Default()
	cfg.Window.Captions = false
	cfg.Car.Seed = 7
	s, err := New(h, cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, h
}

func TestNewNeedsOneCanvasPerScene(t *testing.T) {
	h := newTestHAL(t, 2, 16)
	if _, err := New(h, config.Default()); !errors.Is(err, hal.ErrNoCanvas) {
		t.Fatalf("err=%v, want ErrNoCanvas", err)
	}
}

func TestFirstStepDrawsEveryScene(t *testing.T) {
	s, h := newTestSystem(t)
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	for _, id := range scene.IDs {
		c := s.Controller(id)
		if c.Frames() != 1 || c.Steps() != 0 || c.Running() {
			t.Fatalf("%s: frames=%d steps=%d running=%v", id, c.Frames(), c.Steps(), c.Running())
		}
	}
	if got := h.imgs[0].RGBAAt(0, 47); got != scene.Sky.RGBA8() {
		t.Fatalf("flower canvas corner %v, want sky", got)
	}

	// Nothing is pending once the first draw is done.
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if f := s.Controller(scene.FlowerID).Frames(); f != 1 {
		t.Fatalf("idle flower rendered again: frames=%d", f)
	}
}

func TestKeysFromKeyboardDriveScenes(t *testing.T) {
	s, h := newTestSystem(t)
	h.keys <- hal.KeyEvent{Press: true, Rune: '1'}
	for i := 0; i < 3; i++ {
		if err := s.Step(); err != nil {
			t.Fatal(err)
		}
	}
	flower := s.Controller(scene.FlowerID)
	if !flower.Running() {
		t.Fatal("flower should be running")
	}
	if flower.Steps() != 3 {
		t.Fatalf("flower steps=%d, want 3", flower.Steps())
	}
	if s.Controller(scene.CarID).Steps() != 0 {
		t.Fatal("car should not move")
	}

	h.keys <- hal.KeyEvent{Press: true, Code: hal.KeyEscape}
	if err := s.Step(); !errors.Is(err, hal.ErrQuit) {
		t.Fatalf("err=%v, want ErrQuit", err)
	}
}

func TestAutoplay(t *testing.T) {
	s, _ := newTestSystem(t, WithAutoplay(scene.RobotID))
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	robot := s.Controller(scene.RobotID)
	if !robot.Running() || robot.Steps() != 1 {
		t.Fatalf("robot running=%v steps=%d", robot.Running(), robot.Steps())
	}
}

func TestReloadAppliesBetweenTicks(t *testing.T) {
	ch := make(chan config.Config, 1)
	s, _ := newTestSystem(t, WithReload(ch))
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Car.Color = &scene.RGB{1, 0, 0}
	ch <- cfg
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	car := s.Controller(scene.CarID).Scene().(*scene.Car)
	if car.BodyColor() != gfx.RGB(1, 0, 0) {
		t.Fatalf("car color %v, want red", car.BodyColor())
	}
	if f := s.Controller(scene.CarID).Frames(); f != 2 {
		t.Fatalf("paused car should redraw after reload: frames=%d", f)
	}
}

func TestHaltPaintsReport(t *testing.T) {
	s, h := newTestSystem(t, WithAutoplay(scene.FlowerID))
	s.halt("boom", nil)

	if !s.Halted() {
		t.Fatal("system should be halted")
	}
	if s.Controller(scene.FlowerID).Running() {
		t.Fatal("halt should stop every scene")
	}
	if err := s.Step(); err != nil {
		t.Fatalf("halted step: %v", err)
	}
	if s.Controller(scene.FlowerID).Frames() != 0 {
		t.Fatal("halted system should not render scenes")
	}
	for i, img := range h.imgs {
		if got := img.RGBAAt(47, 47); got != gfx.White.RGBA8() {
			t.Fatalf("canvas %d corner %v, want white", i, got)
		}
	}
}

func TestTakeRunes(t *testing.T) {
	head, rest := takeRunes("héllo", 2)
	if head != "hé" || rest != "llo" {
		t.Fatalf("takeRunes = %q %q", head, rest)
	}
	if head, rest := takeRunes("ab", 5); head != "ab" || rest != "" {
		t.Fatalf("short string split as %q %q", head, rest)
	}
}
