package gfx

import (
	"fmt"
	"math"
)

// Vertices is a flat list of x,y pairs.
type Vertices []float32

// Points reports the number of x,y pairs.
func (v Vertices) Points() int { return len(v) / 2 }

// ValidateVertices rejects lists that cannot form a fan: odd length or fewer
// than three points.
func ValidateVertices(v Vertices) error {
	if len(v)%2 != 0 {
		return fmt.Errorf("%w: odd length %d", ErrInvalidVertices, len(v))
	}
	if len(v) < 6 {
		return fmt.Errorf("%w: %d points, need at least 3", ErrInvalidVertices, len(v)/2)
	}
	return nil
}

// Normalize maps pixel coordinates on a w x h canvas into clip space with y
// pointing up. The input is left untouched.
func Normalize(w, h float32, v Vertices) Vertices {
	out := make(Vertices, len(v))
	fw, fh := float64(w), float64(h)
	for i := 0; i+1 < len(v); i += 2 {
		out[i] = float32(float64(v[i])/fw*2 - 1)
		out[i+1] = float32(1 - float64(v[i+1])/fh*2)
	}
	return out
}

// Denormalize is the inverse of Normalize.
func Denormalize(w, h float32, v Vertices) Vertices {
	out := make(Vertices, len(v))
	fw, fh := float64(w), float64(h)
	for i := 0; i+1 < len(v); i += 2 {
		out[i] = float32((float64(v[i]) + 1) / 2 * fw)
		out[i+1] = float32((1 - float64(v[i+1])) / 2 * fh)
	}
	return out
}

// CenterPoint returns the arithmetic mean of all points.
func CenterPoint(v Vertices) (Vec2, error) {
	if len(v) == 0 || len(v)%2 != 0 {
		return Vec2{}, fmt.Errorf("%w: cannot center %d values", ErrInvalidVertices, len(v))
	}
	var x, y float64
	for i := 0; i < len(v); i += 2 {
		x += float64(v[i])
		y += float64(v[i+1])
	}
	n := float64(len(v) / 2)
	return Vec2{X: float32(x / n), Y: float32(y / n)}, nil
}

// CircleVertices traces a closed circle counter-clockwise from angle 0.
// It emits segments+1 points so the last point repeats the first.
func CircleVertices(cx, cy, radius float32, segments int) (Vertices, error) {
	if segments <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSegments, segments)
	}
	out := make(Vertices, 0, 2*(segments+1))
	step := 2 * math.Pi / float64(segments)
	for i := 0; i <= segments; i++ {
		a := float64(i) * step
		out = append(out,
			cx+radius*float32(math.Cos(a)),
			cy+radius*float32(math.Sin(a)),
		)
	}
	return out, nil
}
