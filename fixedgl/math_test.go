package fixedgl

import (
	"math"
	"testing"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-4 }

func TestMulIdentity(t *testing.T) {
	a := Identity()
	b := Translation(1, 2, 3)
	if got := a.Mul(b); got != b {
		t.Fatalf("identity*b mismatch: %v", got)
	}
	if got := b.Mul(a); got != b {
		t.Fatalf("b*identity mismatch: %v", got)
	}
}

func TestTranslationMovesPoints(t *testing.T) {
	p := Translation(1, -2, 3).Transform(V4(1, 1, 1, 1))
	if p != V4(2, -1, 4, 1) {
		t.Fatalf("got %v", p)
	}
	d := Translation(1, -2, 3).Transform(V4(1, 1, 1, 0))
	if d != V4(1, 1, 1, 0) {
		t.Fatalf("directions must not translate, got %v", d)
	}
}

func TestLookAtPutsCenterOnNegativeZ(t *testing.T) {
	m := LookAtMatrix(V3(0, 5, 10), V3(4, 0, 4), V3(0, 1, 0))
	c := m.Transform(V4(4, 0, 4, 1))
	if !near(c.X, 0) || !near(c.Y, 0) || c.Z >= 0 {
		t.Fatalf("center not on -Z axis: %v", c)
	}
	eye := m.Transform(V4(0, 5, 10, 1))
	if !near(eye.X, 0) || !near(eye.Y, 0) || !near(eye.Z, 0) {
		t.Fatalf("eye not at origin: %v", eye)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := PerspectiveMatrix(40, 800.0/600.0, 1, 150)
	for _, tc := range []struct {
		z    float32
		want float32
	}{
		{-1, -1},
		{-150, 1},
	} {
		v := p.Transform(V4(0, 0, tc.z, 1))
		if got := v.Z / v.W; !near(got, tc.want) {
			t.Fatalf("z=%v: ndc %v, want %v", tc.z, got, tc.want)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("got %v", got)
	}
	if got := V3(3, 0, 4).Normalize().Len(); !near(got, 1) {
		t.Fatalf("len %v", got)
	}
}
