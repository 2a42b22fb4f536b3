package gfx

import "math"

// Vec2 is a 2D point.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D vector, used for rotation axes.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a homogeneous point.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 is a column-major 4x4 matrix.
//
// It matches the conventional OpenGL layout:
// m[col*4+row].
type Mat4 [16]float32

var (
	AxisX = Vec3{X: 1}
	AxisY = Vec3{Y: 1}
	AxisZ = Vec3{Z: 1}
)

func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				a[0*4+row]*b[col*4+0] +
					a[1*4+row]*b[col*4+1] +
					a[2*4+row]*b[col*4+2] +
					a[3*4+row]*b[col*4+3]
		}
	}
	return out
}

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

func Mat4Translation(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

func Mat4Scaling(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// Mat4Rotation returns a rotation of rad radians around axis.
// A zero axis yields the identity.
func Mat4Rotation(rad float32, axis Vec3) Mat4 {
	l := float32(math.Sqrt(float64(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)))
	if l == 0 {
		return Mat4Identity()
	}
	x, y, z := axis.X/l, axis.Y/l, axis.Z/l
	s := float32(math.Sin(float64(rad)))
	c := float32(math.Cos(float64(rad)))
	t := 1 - c

	// Column-major.
	return Mat4{
		x*x*t + c, y*x*t + z*s, z*x*t - y*s, 0,
		x*y*t - z*s, y*y*t + c, z*y*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, z*z*t + c, 0,
		0, 0, 0, 1,
	}
}

// The methods below post-multiply: m.Translate(v) is m * T(v), so the last
// operation in a chain is the first one applied to a vertex.

func (m Mat4) Translate(x, y, z float32) Mat4 {
	return Mat4Mul(m, Mat4Translation(V3(x, y, z)))
}

func (m Mat4) Scale(x, y, z float32) Mat4 {
	return Mat4Mul(m, Mat4Scaling(V3(x, y, z)))
}

func (m Mat4) Rotate(rad float32, axis Vec3) Mat4 {
	return Mat4Mul(m, Mat4Rotation(rad, axis))
}

func (m Mat4) RotateZ(rad float32) Mat4 { return m.Rotate(rad, AxisZ) }

// Apply transforms the point (x, y, 0, 1) and returns its x and y after the
// perspective divide.
func (m Mat4) Apply(x, y float32) (float32, float32) {
	p := Mat4MulV4(m, Vec4{X: x, Y: y, W: 1})
	if p.W != 0 && p.W != 1 {
		return p.X / p.W, p.Y / p.W
	}
	return p.X, p.Y
}
