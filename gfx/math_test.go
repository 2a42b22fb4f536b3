package gfx

import (
	"math"
	"testing"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translation(V3(1, 2, 3))
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestRotationMatchesZAxis(t *testing.T) {
	m := Mat4Identity().RotateZ(math.Pi / 2)
	x, y := m.Apply(1, 0)
	if !near(x, 0) || !near(y, 1) {
		t.Fatalf("rotating (1,0) by pi/2 gave (%v,%v)", x, y)
	}
}

func TestRotateYByPiMirrorsX(t *testing.T) {
	m := Mat4Identity().Rotate(math.Pi, AxisY)
	x, y := m.Apply(0.3, -0.4)
	if !near(x, -0.3) || !near(y, -0.4) {
		t.Fatalf("mirror gave (%v,%v)", x, y)
	}
}

func TestChainPostMultiplies(t *testing.T) {
	// Translate then scale: the scale is applied to the vertex first.
	m := Mat4Identity().Translate(1, 0, 0).Scale(2, 2, 1)
	x, y := m.Apply(1, 1)
	if !near(x, 3) || !near(y, 2) {
		t.Fatalf("got (%v,%v), want (3,2)", x, y)
	}
}

func TestRotationZeroAxisIsIdentity(t *testing.T) {
	if Mat4Rotation(1, Vec3{}) != Mat4Identity() {
		t.Fatal("zero axis should not rotate")
	}
}
