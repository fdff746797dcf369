package geom

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func vecEquals(a, b Vec) bool {
	return floatEquals(a.X, b.X) && floatEquals(a.Y, b.Y)
}

func TestVec_AddSubScale(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	if got := a.Add(b); !vecEquals(got, V(2, 6)) {
		t.Errorf("Add: got %v, want (2, 6)", got)
	}
	if got := a.Sub(b); !vecEquals(got, V(4, 2)) {
		t.Errorf("Sub: got %v, want (4, 2)", got)
	}
	if got := a.Scale(0.5); !vecEquals(got, V(1.5, 2)) {
		t.Errorf("Scale: got %v, want (1.5, 2)", got)
	}
}

func TestVec_MagDist(t *testing.T) {
	a := V(3, 4)

	if got := a.Mag(); !floatEquals(got, 5) {
		t.Errorf("Mag: got %v, want 5", got)
	}
	if got := a.MagSq(); !floatEquals(got, 25) {
		t.Errorf("MagSq: got %v, want 25", got)
	}
	if got := a.Dist(V(3, 0)); !floatEquals(got, 4) {
		t.Errorf("Dist: got %v, want 4", got)
	}
	if got := a.DistSq(V(0, 4)); !floatEquals(got, 9) {
		t.Errorf("DistSq: got %v, want 9", got)
	}
}

func TestVec_Normalize(t *testing.T) {
	got := V(10, 0).Normalize()
	if !vecEquals(got, V(1, 0)) {
		t.Errorf("Normalize: got %v, want (1, 0)", got)
	}

	// Zero input must not produce NaN.
	got = Zero.Normalize()
	if !vecEquals(got, Zero) {
		t.Errorf("Normalize zero: got %v, want (0, 0)", got)
	}
}

func TestVec_PerpRotate(t *testing.T) {
	if got := V(1, 0).Perp(); !vecEquals(got, V(0, 1)) {
		t.Errorf("Perp: got %v, want (0, 1)", got)
	}

	got := V(1, 0).Rotate(math.Pi / 2)
	if !vecEquals(got, V(0, 1)) {
		t.Errorf("Rotate pi/2: got %v, want (0, 1)", got)
	}

	got = V(2, 3).Rotate(2 * math.Pi)
	if !vecEquals(got, V(2, 3)) {
		t.Errorf("Rotate 2pi: got %v, want (2, 3)", got)
	}
}

func TestVec_AngleRoundTrip(t *testing.T) {
	for _, theta := range []float64{0, 0.5, math.Pi / 2, -2.0, 3.0} {
		v := FromAngle(theta)
		if !floatEquals(v.Mag(), 1) {
			t.Errorf("FromAngle(%v): magnitude %v, want 1", theta, v.Mag())
		}
		if got := v.Angle(); !floatEquals(NormalizeAngle(got-theta), 0) {
			t.Errorf("Angle(FromAngle(%v)): got %v", theta, got)
		}
	}
}

func TestVec_Lerp(t *testing.T) {
	a := V(0, 0)
	b := V(10, -4)

	if got := a.Lerp(b, 0); !vecEquals(got, a) {
		t.Errorf("Lerp t=0: got %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !vecEquals(got, b) {
		t.Errorf("Lerp t=1: got %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.25); !vecEquals(got, V(2.5, -1)) {
		t.Errorf("Lerp t=0.25: got %v, want (2.5, -1)", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-2.5 * math.Pi, -0.5 * math.Pi},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); !floatEquals(got, c.want) {
			t.Errorf("NormalizeAngle(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}
