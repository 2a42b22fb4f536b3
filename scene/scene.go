// Package scene holds the three illustrations and the controllers that animate
// them.
//
// Each scene owns a small state struct. Step advances it by exactly one frame
// and never fails; Render redraws the whole canvas from the current state.
package scene

import (
	"fmt"

	"paintbox/gfx"
)

// Scene is one illustration on its own canvas.
type Scene interface {
	Name() string
	Step()
	Render(r *gfx.Renderer) error
}

// Sided is implemented by scenes that can face left or right.
type Sided interface {
	Side() Side
	SetSide(s Side)
}

// ID identifies one of the three canvases.
type ID uint8

const (
	FlowerID ID = iota
	CarID
	RobotID
)

// IDs lists every scene in page order.
var IDs = []ID{FlowerID, CarID, RobotID}

func (id ID) String() string {
	switch id {
	case FlowerID:
		return "flower"
	case CarID:
		return "car"
	case RobotID:
		return "robot"
	}
	return fmt.Sprintf("scene(%d)", uint8(id))
}

// ParseID maps a scene name back to its ID.
func ParseID(s string) (ID, error) {
	for _, id := range IDs {
		if id.String() == s {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown scene %q", s)
}

// Side is the facing of the car and the robot.
type Side uint8

const (
	FacingLeft  Side = 0
	FacingRight Side = 1
)

func (s Side) String() string {
	if s == FacingLeft {
		return "left"
	}
	return "right"
}

// Flip returns the opposite facing.
func (s Side) Flip() Side {
	if s == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// RGB is a color as written in config files.
type RGB [3]float32

func (c RGB) Color() gfx.Color { return gfx.RGB(c[0], c[1], c[2]) }

// Sky is the clear color of the flower and car canvases.
var Sky = gfx.RGB(0.67, 0.84, 1)

// pen forwards draw calls to a renderer and keeps the first error.
type pen struct {
	r   *gfx.Renderer
	err error
}

func (p *pen) poly(v gfx.Vertices, c gfx.Color, m *gfx.Mat4) {
	if p.err == nil {
		p.err = p.r.DrawPolygon(v, c, m)
	}
}

func (p *pen) bordered(v gfx.Vertices, c gfx.Color, m *gfx.Mat4) {
	p.borderedScaled(v, c, m, gfx.DefaultBorderScale, gfx.DefaultBorderScale)
}

func (p *pen) borderedScaled(v gfx.Vertices, c gfx.Color, m *gfx.Mat4, sx, sy float32) {
	if p.err == nil {
		p.err = p.r.DrawPolygonWithBorder(v, c, m, sx, sy)
	}
}

func (p *pen) circle(x, y, r float32, c gfx.Color, m *gfx.Mat4) {
	if p.err == nil {
		p.err = p.r.DrawCircle(x, y, r, c, m)
	}
}

func (p *pen) borderedCircle(s screw, c gfx.Color, m *gfx.Mat4) {
	if p.err == nil {
		p.err = p.r.DrawCircleWithBorder(s.X, s.Y, s.R, c, m)
	}
}

// screw is a small bordered circle (joints, eyes, bolts).
type screw struct {
	X, Y, R float32
}
