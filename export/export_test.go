package export

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/png"
	"math"
	"testing"

	"paintbox/scene"
)

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestRecorderFrameSupersampled(t *testing.T) {
	f := scene.NewFlower(scene.DefaultFlowerParams())
	rec, err := NewRecorder(f, Options{Width: 40, Height: 40, Supersample: 3})
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	img, err := rec.Frame()
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Fatalf("frame is %v", img.Bounds())
	}
	c := img.RGBAAt(20, 20)
	if !near(c.R, 255) || !near(c.G, 255) || !near(c.B, 0) {
		t.Fatalf("center pixel %v, want yellow", c)
	}
	if f.State().Rotation != 0 {
		t.Fatal("Frame advanced the scene")
	}
}

func TestRecorderRecordSteps(t *testing.T) {
	f := scene.NewFlower(scene.DefaultFlowerParams())
	rec, err := NewRecorder(f, Options{Width: 16, Height: 16})
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	frames, err := rec.Record(3, func() { calls++ })
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(frames) != 3 || calls != 3 {
		t.Fatalf("frames=%d progress=%d", len(frames), calls)
	}
	if math.Abs(f.State().Rotation-0.03) > 1e-12 {
		t.Fatalf("rotation=%v", f.State().Rotation)
	}
}

func TestNewRecorderRejectsEmptySize(t *testing.T) {
	if _, err := NewRecorder(scene.NewFlower(scene.DefaultFlowerParams()), Options{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGIFEncodesAllFrames(t *testing.T) {
	rec, err := NewRecorder(scene.NewRobot(scene.DefaultRobotParams()), Options{Width: 24, Height: 24})
	if err != nil {
		t.Fatal(err)
	}
	frames, err := rec.Record(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := GIF(&buf, frames, 2); err != nil {
		t.Fatalf("GIF: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(g.Image) != 4 || g.Delay[0] != 2 {
		t.Fatalf("decoded %d frames, delay %v", len(g.Image), g.Delay)
	}

	if err := GIF(&buf, nil, 2); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("err=%v, want ErrNoFrames", err)
	}
}

func TestPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	var buf bytes.Buffer
	if err := PNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	out, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds %v", out.Bounds())
	}
}

func TestFromRGB565(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0x00, 0xF8}
	img := FromRGB565(buf, 2, 1)
	if c := img.RGBAAt(0, 0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("white decoded as %v", c)
	}
	if c := img.RGBAAt(1, 0); c.R < 0xF0 || c.G != 0 || c.B != 0 {
		t.Fatalf("red decoded as %v", c)
	}
}
