//go:build cgo || js

package kage

import (
	"fmt"
	"image/color"

	"paintbox/gfx"

	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/drivers"
)

// colorUniform is the exported Kage variable the fan shader reads.
const colorUniform = "Color"

type program struct {
	name   string
	shader *ebiten.Shader
	b      *Backend
}

func (p *program) Name() string { return p.name }

type buffer struct {
	data []float32
}

func (b *buffer) Len() int { return len(b.data) }

// Backend draws onto one offscreen ebiten image (one canvas).
type Backend struct {
	dst   *ebiten.Image
	model gfx.Mat4
	color gfx.Color

	vs []ebiten.Vertex
}

func New(dst *ebiten.Image) (*Backend, error) {
	if dst == nil {
		return nil, gfx.ErrNoSurface
	}
	return &Backend{dst: dst, model: gfx.Mat4Identity()}, nil
}

func (b *Backend) Image() *ebiten.Image { return b.dst }

func (b *Backend) Size() (int, int) {
	r := b.dst.Bounds()
	return r.Dx(), r.Dy()
}

func (b *Backend) Clear(c gfx.Color) { b.dst.Fill(c.RGBA8()) }

func (b *Backend) CompileProgram(src gfx.ProgramSource) (gfx.Program, error) {
	if len(src.Kage) == 0 {
		return nil, fmt.Errorf("%w: %s has no Kage source", gfx.ErrProgram, src.Name)
	}
	sh, err := ebiten.NewShader(src.Kage)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gfx.ErrProgram, src.Name, err)
	}
	return &program{name: src.Name, shader: sh, b: b}, nil
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

func (b *Backend) SetColor(_ gfx.Program, c gfx.Color) { b.color = c }

func (b *Backend) DrawTriangleFan(p gfx.Program, buf gfx.Buffer, count int) error {
	prog, err := b.own(p)
	if err != nil {
		return err
	}
	vb, ok := buf.(*buffer)
	if !ok {
		return gfx.ErrForeignHandle
	}
	if count < 0 || count*2 > len(vb.data) {
		return fmt.Errorf("%w: draw of %d points from a %d-point buffer", gfx.ErrInvalidVertices, count, len(vb.data)/2)
	}
	indices := gfx.FanIndices(count)
	if indices == nil {
		return nil
	}

	w, h := b.Size()
	b.vs = b.vs[:0]
	for i := 0; i < count; i++ {
		x, y := b.model.Apply(vb.data[i*2], vb.data[i*2+1])
		// ebiten puts the center of pixel i at i+0.5.
		px, py := gfx.ClipToPixel(x, y, w, h)
		b.vs = append(b.vs, ebiten.Vertex{
			DstX: px + 0.5, DstY: py + 0.5,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}

	op := &ebiten.DrawTrianglesShaderOptions{
		Uniforms: map[string]any{
			colorUniform: []float32{b.color.R, b.color.G, b.color.B},
		},
	}
	b.dst.DrawTrianglesShader(b.vs, indices, prog.shader, op)
	return nil
}

// DrawText prints a caption pixel by pixel through tinyfont.
func (b *Backend) DrawText(x, y int, s string, c gfx.Color) {
	gfx.WriteText(&displayer{img: b.dst}, x, y, s, c)
}

func (b *Backend) own(p gfx.Program) (*program, error) {
	pp, ok := p.(*program)
	if !ok || pp.b != b {
		return nil, gfx.ErrForeignHandle
	}
	return pp, nil
}

var _ drivers.Displayer = (*displayer)(nil)

type displayer struct {
	img *ebiten.Image
}

func (d *displayer) Size() (x, y int16) {
	r := d.img.Bounds()
	return int16(r.Dx()), int16(r.Dy())
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) { d.img.Set(int(x), int(y), c) }

func (d *displayer) Display() error { return nil }
