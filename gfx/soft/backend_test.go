package soft

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"paintbox/gfx"
)

func newRGBA(t *testing.T, w, h int) (*Backend, *image.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	b, err := New(&RGBATarget{Img: img})
	if err != nil {
		t.Fatal(err)
	}
	return b, img
}

func TestNewRejectsEmptyTarget(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, gfx.ErrNoSurface) {
		t.Fatalf("nil target: got %v", err)
	}
	if _, err := New(&RGB565Target{}); !errors.Is(err, gfx.ErrNoSurface) {
		t.Fatalf("empty target: got %v", err)
	}
}

func TestCompileProgramChecksDeclarations(t *testing.T) {
	b, _ := newRGBA(t, 4, 4)
	if _, err := b.CompileProgram(gfx.FanProgram); err != nil {
		t.Fatalf("fan program: %v", err)
	}
	broken := gfx.FanProgram
	broken.Fragment = "void main() {}"
	if _, err := b.CompileProgram(broken); !errors.Is(err, gfx.ErrProgram) {
		t.Fatalf("missing color uniform: got %v", err)
	}
}

func TestFanCoversQuad(t *testing.T) {
	b, img := newRGBA(t, 21, 21)
	r, err := gfx.NewRenderer(b)
	if err != nil {
		t.Fatal(err)
	}
	r.Clear(gfx.Black)

	// Left half of the canvas.
	quad := gfx.Vertices{-1, -1, 0, -1, 0, 1, -1, 1}
	if err := r.DrawPolygon(quad, gfx.White, nil); err != nil {
		t.Fatal(err)
	}

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	if got := img.RGBAAt(3, 10); got != white {
		t.Fatalf("inside pixel %v", got)
	}
	if got := img.RGBAAt(17, 10); got == white {
		t.Fatalf("outside pixel painted")
	}
}

func TestMirroredShapeStillFills(t *testing.T) {
	b, img := newRGBA(t, 21, 21)
	r, err := gfx.NewRenderer(b)
	if err != nil {
		t.Fatal(err)
	}
	r.Clear(gfx.Black)

	m := gfx.Mat4Identity().Rotate(3.14159265, gfx.AxisY)
	quad := gfx.Vertices{-1, -1, 0, -1, 0, 1, -1, 1}
	if err := r.DrawPolygon(quad, gfx.RGB(1, 0, 0), &m); err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(17, 10); got.R != 0xFF || got.G != 0 {
		t.Fatalf("mirrored quad missing on the right: %v", got)
	}
	if got := img.RGBAAt(3, 10); got.R != 0 {
		t.Fatalf("mirrored quad left a pixel on the left: %v", got)
	}
}

func TestBorderLeavesBlackRim(t *testing.T) {
	b, img := newRGBA(t, 41, 41)
	r, err := gfx.NewRenderer(b)
	if err != nil {
		t.Fatal(err)
	}
	r.Clear(gfx.White)

	sq := gfx.Vertices{-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5}
	if err := r.DrawPolygonWithBorder(sq, gfx.RGB(0, 1, 0), nil, 0.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(20, 20); got.G != 0xFF || got.R != 0 {
		t.Fatalf("center %v, want green", got)
	}
	if got := img.RGBAAt(12, 20); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("rim %v, want black", got)
	}
}

func TestDrawRejectsShortBuffer(t *testing.T) {
	b, _ := newRGBA(t, 4, 4)
	p, err := b.CompileProgram(gfx.FanProgram)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := b.UploadVertices(p, gfx.Vertices{0, 0, 1, 0, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.DrawTriangleFan(p, buf, 4); !errors.Is(err, gfx.ErrInvalidVertices) {
		t.Fatalf("got %v", err)
	}
}

func TestForeignProgramRejected(t *testing.T) {
	a, _ := newRGBA(t, 4, 4)
	other, _ := newRGBA(t, 4, 4)
	p, err := other.CompileProgram(gfx.FanProgram)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.UploadVertices(p, gfx.Vertices{0, 0, 1, 0, 1, 1}); !errors.Is(err, gfx.ErrForeignHandle) {
		t.Fatalf("got %v", err)
	}
}

func TestRGB565TargetRoundTrip(t *testing.T) {
	buf := make([]byte, 4*2*2)
	tg := &RGB565Target{Buf: buf, Stride: 4, W: 2, H: 2}
	tg.SetPixel(1, 1, color.RGBA{R: 0xFF, A: 0xFF})
	p := uint16(buf[6]) | uint16(buf[7])<<8
	r, g, b := RGB888(p)
	if r != 0xFF || g != 0 || b != 0 {
		t.Fatalf("got %d,%d,%d", r, g, b)
	}
	tg.SetPixel(5, 5, color.RGBA{A: 0xFF}) // clipped
}

func TestDrawTextPaintsPixels(t *testing.T) {
	b, img := newRGBA(t, 40, 12)
	b.Clear(gfx.Black)
	b.DrawText(1, 1, "HI", gfx.White)
	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 0xFF {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("caption left no pixels")
	}
}

func TestClipToScreenSharesPixelCenters(t *testing.T) {
	cases := []struct {
		x, y float32
		want point
	}{
		{-1, 1, point{0, 0}},
		{1, -1, point{199, 99}},
		{0, 0, point{100, 50}},
	}
	for _, tc := range cases {
		got := clipToScreen(tc.x, tc.y, 200, 100)
		if got != tc.want {
			t.Fatalf("clipToScreen(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
		px, py := gfx.ClipToPixel(tc.x, tc.y, 200, 100)
		if roundInt(px) != got.x || roundInt(py) != got.y {
			t.Fatalf("gfx.ClipToPixel(%v,%v) = (%v,%v), soft placed %v", tc.x, tc.y, px, py, got)
		}
	}
}
