// Package soft is a CPU implementation of gfx.Backend.
//
// It plays the part of a GL context: the fan program is "linked" by checking
// that its sources declare what the renderer binds, the vertex stage is the
// model matrix applied per point, and the fragment stage is a flat color.
package soft

import (
	"fmt"
	"image/color"
	"strings"

	"paintbox/gfx"
)

type program struct {
	src gfx.ProgramSource
	b   *Backend
}

func (p *program) Name() string { return p.src.Name }

type buffer struct {
	data []float32
}

func (b *buffer) Len() int { return len(b.data) }

// Backend rasterizes triangle fans into a Target.
type Backend struct {
	t     Target
	model gfx.Mat4
	color color.RGBA
}

// New wraps t. It fails when there is nothing to draw on.
func New(t Target) (*Backend, error) {
	if t == nil {
		return nil, gfx.ErrNoSurface
	}
	if w, h := t.Size(); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: target is %dx%d", gfx.ErrNoSurface, w, h)
	}
	return &Backend{t: t, model: gfx.Mat4Identity(), color: color.RGBA{A: 0xFF}}, nil
}

func (b *Backend) Target() Target   { return b.t }
func (b *Backend) Size() (int, int) { return b.t.Size() }

func (b *Backend) Clear(c gfx.Color) { b.t.Clear(c.RGBA8()) }

func (b *Backend) CompileProgram(src gfx.ProgramSource) (gfx.Program, error) {
	checks := []struct {
		stage, text, name string
	}{
		{"vertex", src.Vertex, src.PositionAttr},
		{"vertex", src.Vertex, src.ModelUniform},
		{"fragment", src.Fragment, src.ColorUniform},
	}
	for _, c := range checks {
		if c.name == "" || !strings.Contains(c.text, c.name) {
			return nil, fmt.Errorf("%w: %s: %s stage does not declare %q", gfx.ErrProgram, src.Name, c.stage, c.name)
		}
	}
	return &program{src: src, b: b}, nil
}

func (b *Backend) UploadVertices(p gfx.Program, v gfx.Vertices) (gfx.Buffer, error) {
	if _, err := b.own(p); err != nil {
		return nil, err
	}
	if len(v)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", gfx.ErrInvalidVertices, len(v))
	}
	data := make([]float32, len(v))
	copy(data, v)
	return &buffer{data: data}, nil
}

func (b *Backend) SetModelMatrix(_ gfx.Program, m gfx.Mat4) { b.model = m }

func (b *Backend) SetColor(_ gfx.Program, c gfx.Color) { b.color = c.RGBA8() }

func (b *Backend) DrawTriangleFan(p gfx.Program, buf gfx.Buffer, count int) error {
	if _, err := b.own(p); err != nil {
		return err
	}
	vb, ok := buf.(*buffer)
	if !ok {
		return gfx.ErrForeignHandle
	}
	if count < 0 || count*2 > len(vb.data) {
		return fmt.Errorf("%w: draw of %d points from a %d-point buffer", gfx.ErrInvalidVertices, count, len(vb.data)/2)
	}
	if count < 3 {
		return nil
	}

	w, h := b.t.Size()
	pts := make([]point, count)
	for i := 0; i < count; i++ {
		x, y := b.model.Apply(vb.data[i*2], vb.data[i*2+1])
		pts[i] = clipToScreen(x, y, w, h)
	}
	for i := 1; i+1 < count; i++ {
		fillTriangle(b.t, w, h, pts[0], pts[i], pts[i+1], b.color)
	}
	return nil
}

// DrawText prints a caption with the bitmap caption font.
func (b *Backend) DrawText(x, y int, s string, c gfx.Color) {
	gfx.WriteText(&Displayer{T: b.t}, x, y, s, c)
}

func (b *Backend) own(p gfx.Program) (*program, error) {
	pp, ok := p.(*program)
	if !ok || pp.b != b {
		return nil, gfx.ErrForeignHandle
	}
	return pp, nil
}
