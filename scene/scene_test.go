package scene

import (
	"image"
	"image/color"
	"math"
	"testing"

	"paintbox/gfx"
)

// pixelAt samples img at clip-space (x, y).
func pixelAt(img *image.RGBA, x, y float32) color.RGBA {
	b := img.Bounds()
	px := int(math.Round(float64((x*0.5 + 0.5) * float32(b.Dx()-1))))
	py := int(math.Round(float64((0.5 - y*0.5) * float32(b.Dy()-1))))
	return img.RGBAAt(px, py)
}

func expectPixel(t *testing.T, img *image.RGBA, x, y float32, want gfx.Color) {
	t.Helper()
	if got := pixelAt(img, x, y); got != want.RGBA8() {
		t.Fatalf("pixel at (%v,%v) = %v, want %v", x, y, got, want.RGBA8())
	}
}

func TestParseID(t *testing.T) {
	for _, id := range IDs {
		got, err := ParseID(id.String())
		if err != nil || got != id {
			t.Fatalf("ParseID(%q) = %v, %v", id.String(), got, err)
		}
	}
	if _, err := ParseID("boat"); err == nil {
		t.Fatal("expected error for unknown scene")
	}
}

func TestSideFlip(t *testing.T) {
	if FacingLeft.Flip() != FacingRight || FacingRight.Flip() != FacingLeft {
		t.Fatal("Flip is not an involution")
	}
}

func TestFlowerStepAndRender(t *testing.T) {
	f := NewFlower(DefaultFlowerParams())
	for i := 0; i < 3; i++ {
		f.Step()
	}
	if math.Abs(f.State().Rotation-0.03) > 1e-12 {
		t.Fatalf("rotation=%v, want 0.03", f.State().Rotation)
	}

	r, img := newTestRenderer(t, 201, 201)
	if err := f.Render(r); err != nil {
		t.Fatalf("Render: %v", err)
	}
	expectPixel(t, img, 0, 0, centerYellow)
	expectPixel(t, img, -0.95, 0.95, Sky)
	expectPixel(t, img, 0, -0.7, stemGreen)
}

func TestFlowerHeadRotates(t *testing.T) {
	f := NewFlower(FlowerParams{RotationStep: math.Pi / 8})
	r, img := newTestRenderer(t, 201, 201)

	// A point between two petals is sky before the turn and petal after it.
	const gx, gy = 0.388, 0.161
	if err := f.Render(r); err != nil {
		t.Fatal(err)
	}
	expectPixel(t, img, gx, gy, Sky)

	f.Step()
	if err := f.Render(r); err != nil {
		t.Fatal(err)
	}
	expectPixel(t, img, gx, gy, petalWhite)
}
