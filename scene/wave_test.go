package scene

import (
	"math"
	"testing"
)

func TestTriangularWaveFlipsAtMax(t *testing.T) {
	v, dir := 0.0, 1.0
	for i := 1; i <= 5; i++ {
		v, dir = TriangularWave(v, dir, 0.01, 0, 0.05)
		if i < 5 && dir != 1 {
			t.Fatalf("direction flipped early at update %d (v=%v)", i, v)
		}
	}
	if math.Abs(v-0.05) > 1e-9 {
		t.Fatalf("after 5 updates v=%v, want 0.05", v)
	}
	if dir != -1 {
		t.Fatalf("direction %v after reaching max, want -1", dir)
	}
}

func TestTriangularWaveBouncesOffMin(t *testing.T) {
	v, dir := 0.02, -1.0
	v, dir = TriangularWave(v, dir, 0.01, 0, 0.05)
	if dir != -1 {
		t.Fatalf("flipped before min (v=%v)", v)
	}
	v, dir = TriangularWave(v, dir, 0.01, 0, 0.05)
	if dir != 1 || math.Abs(v) > 1e-9 {
		t.Fatalf("at min: v=%v dir=%v", v, dir)
	}
}

func TestTriangularWaveStaysInBand(t *testing.T) {
	v, dir := 0.0, 1.0
	for i := 0; i < 1000; i++ {
		v, dir = TriangularWave(v, dir, 0.03, -0.8, 0.5)
		if v < -0.8-0.03 || v > 0.5+0.03 {
			t.Fatalf("update %d left the band: %v", i, v)
		}
	}
}

func TestWrapStepDown(t *testing.T) {
	v := 0.0
	for i := 1; i <= 19; i++ {
		v = WrapStep(v, -0.01, 0.2)
		if v > 0 {
			t.Fatalf("wrapped early at step %d: %v", i, v)
		}
	}
	v = WrapStep(v, -0.01, 0.2)
	if v != 0.2 {
		t.Fatalf("step 20 gave %v, want wrap to 0.2", v)
	}
}

func TestWrapStepUp(t *testing.T) {
	v := 0.95
	v = WrapStep(v, 0.01, 1)
	if v == -1 {
		t.Fatalf("wrapped before reaching the limit")
	}
	for i := 0; i < 10 && v > 0; i++ {
		v = WrapStep(v, 0.01, 1)
	}
	if v != -1 {
		t.Fatalf("got %v, want wrap to -1", v)
	}
}
