package creature

import (
	"math"
	"testing"

	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

func TestSolveTwoBone_ReachableTarget(t *testing.T) {
	attach := geom.V(3, -2)
	target := geom.V(15, 7)
	upper, lower := 10.0, 12.0

	knee, foot := solveTwoBone(attach, 0, target, upper, lower, +1)

	if got := attach.Dist(knee); !floatEquals(got, upper) {
		t.Errorf("upper bone length = %v, want %v", got, upper)
	}
	if got := knee.Dist(foot); !floatEquals(got, lower) {
		t.Errorf("lower bone length = %v, want %v", got, lower)
	}
	if !vecEquals(foot, target) {
		t.Errorf("foot = %v, want target %v", foot, target)
	}
}

func TestSolveTwoBone_SideSelectsBend(t *testing.T) {
	attach := geom.V(0, 0)
	target := geom.V(14, 0)

	kneeR, _ := solveTwoBone(attach, 0, target, 10, 12, +1)
	kneeL, _ := solveTwoBone(attach, 0, target, 10, 12, -1)

	// Opposite sides of the attach-target line, mirror images across it.
	if kneeR.Y <= 0 || kneeL.Y >= 0 {
		t.Fatalf("knees on wrong sides: right %v, left %v", kneeR, kneeL)
	}
	if !floatEquals(kneeR.X, kneeL.X) || !floatEquals(kneeR.Y, -kneeL.Y) {
		t.Errorf("knees not mirrored: right %v, left %v", kneeR, kneeL)
	}
}

func TestSolveTwoBone_OverreachClamps(t *testing.T) {
	attach := geom.V(0, 0)
	target := geom.V(100, 0)

	knee, foot := solveTwoBone(attach, 0, target, 10, 12, +1)

	if !vecEquals(knee, geom.V(10, 0)) {
		t.Errorf("knee = %v, want (10, 0)", knee)
	}
	if !vecEquals(foot, geom.V(22, 0)) {
		t.Errorf("foot = %v, want (22, 0)", foot)
	}
}

func TestSolveTwoBone_FoldedShorterUpper(t *testing.T) {
	attach := geom.V(0, 0)
	target := geom.V(1, 0) // inside |upper-lower| = 2

	knee, foot := solveTwoBone(attach, 0, target, 10, 12, +1)

	if !vecEquals(knee, geom.V(10, 0)) {
		t.Errorf("knee = %v, want (10, 0)", knee)
	}
	// Lower bone is longer, so the folded foot overshoots past the attach.
	if !vecEquals(foot, geom.V(-2, 0)) {
		t.Errorf("foot = %v, want (-2, 0)", foot)
	}
	if got := knee.Dist(foot); !floatEquals(got, 12) {
		t.Errorf("lower bone length = %v, want 12", got)
	}
	if got := attach.Dist(foot); !floatEquals(got, 2) {
		t.Errorf("attach-foot distance = %v, want |upper-lower| = 2", got)
	}
}

func TestSolveTwoBone_FoldedLongerUpper(t *testing.T) {
	attach := geom.V(0, 0)
	target := geom.V(1, 0)

	knee, foot := solveTwoBone(attach, 0, target, 12, 10, +1)

	if !vecEquals(knee, geom.V(12, 0)) {
		t.Errorf("knee = %v, want (12, 0)", knee)
	}
	if !vecEquals(foot, geom.V(2, 0)) {
		t.Errorf("foot = %v, want (2, 0)", foot)
	}
	if got := knee.Dist(foot); !floatEquals(got, 10) {
		t.Errorf("lower bone length = %v, want 10", got)
	}
}

func TestSolveTwoBone_TargetOnAttach(t *testing.T) {
	attach := geom.V(5, 5)

	knee, foot := solveTwoBone(attach, 0, attach, 10, 12, +1)

	for _, v := range []geom.Vec{knee, foot} {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			t.Fatalf("non-finite pose: knee %v, foot %v", knee, foot)
		}
	}
	// Falls back to the sideways fold: heading 0, side +1 puts the limb
	// along +y from the attach.
	if !vecEquals(knee, geom.V(5, 15)) {
		t.Errorf("knee = %v, want (5, 15)", knee)
	}
	if got := attach.Dist(foot); !floatEquals(got, 2) {
		t.Errorf("attach-foot distance = %v, want 2", got)
	}
}

func TestSolveTwoBone_BoneLengthsAcrossSweep(t *testing.T) {
	attach := geom.V(0, 0)
	upper, lower := 9.0, 13.0

	// Sweep targets across reachable and unreachable distances and angles;
	// the upper bone must hold its length everywhere and the lower bone
	// everywhere except clamped overreach, where the foot detaches from the
	// target but the limb stays rigid.
	for dist := 0.5; dist < 30; dist += 0.7 {
		for theta := 0.0; theta < 2*math.Pi; theta += math.Pi / 7 {
			target := geom.FromAngle(theta).Scale(dist)
			knee, foot := solveTwoBone(attach, 0, target, upper, lower, -1)

			if got := attach.Dist(knee); !floatEquals(got, upper) {
				t.Fatalf("dist %v theta %v: upper bone %v, want %v", dist, theta, got, upper)
			}
			if got := knee.Dist(foot); !floatEquals(got, lower) {
				t.Fatalf("dist %v theta %v: lower bone %v, want %v", dist, theta, got, lower)
			}
		}
	}
}
