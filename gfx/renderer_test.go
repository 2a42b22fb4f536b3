package gfx

import (
	"errors"
	"testing"
)

type fakeProgram struct{ name string }

func (p fakeProgram) Name() string { return p.name }

type fakeBuffer struct{ v Vertices }

func (b *fakeBuffer) Len() int { return len(b.v) }

type drawCall struct {
	v     Vertices
	model Mat4
	color Color
	count int
}

type fakeBackend struct {
	w, h    int
	linked  int
	uploads int
	model   Mat4
	color   Color
	calls   []drawCall
	linkErr error
}

func (b *fakeBackend) CompileProgram(src ProgramSource) (Program, error) {
	if b.linkErr != nil {
		return nil, b.linkErr
	}
	b.linked++
	return fakeProgram{name: src.Name}, nil
}

func (b *fakeBackend) UploadVertices(_ Program, v Vertices) (Buffer, error) {
	b.uploads++
	return &fakeBuffer{v: append(Vertices(nil), v...)}, nil
}

func (b *fakeBackend) SetModelMatrix(_ Program, m Mat4) { b.model = m }
func (b *fakeBackend) SetColor(_ Program, c Color)      { b.color = c }

func (b *fakeBackend) DrawTriangleFan(_ Program, buf Buffer, count int) error {
	b.calls = append(b.calls, drawCall{v: buf.(*fakeBuffer).v, model: b.model, color: b.color, count: count})
	return nil
}

func (b *fakeBackend) Clear(Color)      {}
func (b *fakeBackend) Size() (int, int) { return b.w, b.h }

func newFakeRenderer(t *testing.T) (*Renderer, *fakeBackend) {
	t.Helper()
	b := &fakeBackend{w: 10, h: 10}
	r, err := NewRenderer(b)
	if err != nil {
		t.Fatal(err)
	}
	return r, b
}

func TestNewRendererNeedsSurface(t *testing.T) {
	if _, err := NewRenderer(nil); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("nil backend: got %v", err)
	}
	if _, err := NewRenderer(&fakeBackend{}); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("zero-size backend: got %v", err)
	}
	if _, err := NewRenderer(&fakeBackend{w: 1, h: 1, linkErr: ErrProgram}); !errors.Is(err, ErrProgram) {
		t.Fatalf("link failure: got %v", err)
	}
}

func TestDrawPolygonDefaultsToIdentity(t *testing.T) {
	r, b := newFakeRenderer(t)
	tri := Vertices{0, 0, 1, 0, 0, 1}
	if err := r.DrawPolygon(tri, White, nil); err != nil {
		t.Fatal(err)
	}
	if len(b.calls) != 1 {
		t.Fatalf("expected 1 draw, got %d", len(b.calls))
	}
	c := b.calls[0]
	if c.model != Mat4Identity() || c.color != White || c.count != 3 {
		t.Fatalf("unexpected call %+v", c)
	}
}

func TestDrawPolygonRejectsBadInput(t *testing.T) {
	r, b := newFakeRenderer(t)
	if err := r.DrawPolygon(Vertices{0, 0, 1}, White, nil); !errors.Is(err, ErrInvalidVertices) {
		t.Fatalf("got %v", err)
	}
	if b.uploads != 0 {
		t.Fatalf("rejected shape was uploaded")
	}
}

func TestEveryDrawUploadsAFreshBuffer(t *testing.T) {
	r, b := newFakeRenderer(t)
	tri := Vertices{0, 0, 1, 0, 0, 1}
	for i := 0; i < 3; i++ {
		_ = r.DrawPolygon(tri, White, nil)
	}
	if b.uploads != 3 || b.linked != 1 {
		t.Fatalf("uploads=%d linked=%d", b.uploads, b.linked)
	}
}

func TestBorderDrawsBlackThenInsetAroundCentroid(t *testing.T) {
	r, b := newFakeRenderer(t)
	sq := Vertices{0, 0, 2, 0, 2, 2, 0, 2} // centroid (1,1)
	model := Mat4Identity().Translate(5, 0, 0)
	if err := r.DrawPolygonWithBorder(sq, White, &model, 0.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if len(b.calls) != 2 {
		t.Fatalf("expected 2 draws, got %d", len(b.calls))
	}
	if b.calls[0].color != Black || b.calls[0].model != model {
		t.Fatalf("border pass %+v", b.calls[0])
	}
	inner := b.calls[1]
	if inner.color != White {
		t.Fatalf("fill color %+v", inner.color)
	}
	// (0,0) moves halfway to the centroid, then the caller's translation applies.
	x, y := inner.model.Apply(0, 0)
	if !near(x, 5.5) || !near(y, 0.5) {
		t.Fatalf("inset corner (%v,%v), want (5.5,0.5)", x, y)
	}
	// The centroid itself is a fixed point of the inset.
	x, y = inner.model.Apply(1, 1)
	if !near(x, 6) || !near(y, 1) {
		t.Fatalf("centroid moved to (%v,%v)", x, y)
	}
}

func TestCircleWithBorderUsesFixedInset(t *testing.T) {
	r, b := newFakeRenderer(t)
	if err := r.DrawCircleWithBorder(0.5, 0.5, 0.1, White, nil); err != nil {
		t.Fatal(err)
	}
	if len(b.calls) != 2 {
		t.Fatalf("expected 2 draws, got %d", len(b.calls))
	}
	if b.calls[0].count != CircleSegments+1 {
		t.Fatalf("circle drawn with %d points", b.calls[0].count)
	}
	x, _ := b.calls[1].model.Apply(0.6, 0.5)
	if !near(x, 0.5+0.1*CircleBorderScale) {
		t.Fatalf("rim point mapped to x=%v", x)
	}
}

func TestDrawTextWithoutSupport(t *testing.T) {
	r, _ := newFakeRenderer(t)
	if r.DrawText(0, 0, "x", White) {
		t.Fatal("fake backend has no text support")
	}
}
