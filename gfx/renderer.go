package gfx

import "fmt"

const (
	// CircleSegments is the tessellation used for every circle.
	CircleSegments = 500

	// DefaultBorderScale shrinks the colored fill of a bordered polygon.
	DefaultBorderScale float32 = 0.98

	// CircleBorderScale shrinks the colored fill of a bordered circle.
	CircleBorderScale float32 = 0.94
)

// Renderer draws filled shapes through a Backend.
//
// Create one per canvas; the program is linked once and kept for the
// renderer's lifetime.
type Renderer struct {
	b    Backend
	prog Program
}

// NewRenderer links the fan program on b.
func NewRenderer(b Backend) (*Renderer, error) {
	if b == nil {
		return nil, ErrNoSurface
	}
	if w, h := b.Size(); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: surface is %dx%d", ErrNoSurface, w, h)
	}
	p, err := b.CompileProgram(FanProgram)
	if err != nil {
		return nil, fmt.Errorf("link %s program: %w", FanProgram.Name, err)
	}
	return &Renderer{b: b, prog: p}, nil
}

func (r *Renderer) Backend() Backend { return r.b }

// Clear fills the whole canvas with c.
func (r *Renderer) Clear(c Color) { r.b.Clear(c) }

// DrawPolygon fills v as a triangle fan. A nil m means identity.
//
// Only convex or fan-triangulable outlines come out right.
func (r *Renderer) DrawPolygon(v Vertices, c Color, m *Mat4) error {
	if err := ValidateVertices(v); err != nil {
		return err
	}
	model := Mat4Identity()
	if m != nil {
		model = *m
	}
	return r.draw(v, c, model)
}

// DrawPolygonWithBorder draws v in black at full size and then in c, shrunk by
// (sx, sy) around its own centroid, so a thin black outline remains.
func (r *Renderer) DrawPolygonWithBorder(v Vertices, c Color, m *Mat4, sx, sy float32) error {
	if err := ValidateVertices(v); err != nil {
		return err
	}
	center, err := CenterPoint(v)
	if err != nil {
		return err
	}
	model := Mat4Identity()
	if m != nil {
		model = *m
	}
	if err := r.draw(v, Black, model); err != nil {
		return err
	}
	return r.draw(v, c, insetAround(model, center, sx, sy))
}

// DrawCircle fills a circle of radius around (cx, cy).
func (r *Renderer) DrawCircle(cx, cy, radius float32, c Color, m *Mat4) error {
	v, err := CircleVertices(cx, cy, radius, CircleSegments)
	if err != nil {
		return err
	}
	return r.DrawPolygon(v, c, m)
}

// DrawCircleWithBorder is DrawCircle with a black rim.
func (r *Renderer) DrawCircleWithBorder(cx, cy, radius float32, c Color, m *Mat4) error {
	v, err := CircleVertices(cx, cy, radius, CircleSegments)
	if err != nil {
		return err
	}
	model := Mat4Identity()
	if m != nil {
		model = *m
	}
	if err := r.draw(v, Black, model); err != nil {
		return err
	}
	return r.draw(v, c, insetAround(model, Vec2{X: cx, Y: cy}, CircleBorderScale, CircleBorderScale))
}

// DrawText prints s if the backend supports captions. Coordinates are pixels.
func (r *Renderer) DrawText(x, y int, s string, c Color) bool {
	td, ok := r.b.(TextDrawer)
	if !ok {
		return false
	}
	td.DrawText(x, y, s, c)
	return true
}

func (r *Renderer) draw(v Vertices, c Color, model Mat4) error {
	// The buffer lives only for this call.
	buf, err := r.b.UploadVertices(r.prog, v)
	if err != nil {
		return fmt.Errorf("upload %d points: %w", v.Points(), err)
	}
	r.b.SetModelMatrix(r.prog, model)
	r.b.SetColor(r.prog, c)
	return r.b.DrawTriangleFan(r.prog, buf, v.Points())
}

// insetAround returns model * T(center) * S(sx, sy) * T(-center).
func insetAround(model Mat4, center Vec2, sx, sy float32) Mat4 {
	return model.
		Translate(center.X, center.Y, 0).
		Scale(sx, sy, 1).
		Translate(-center.X, -center.Y, 0)
}
