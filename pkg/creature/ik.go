package creature

import (
	"math"

	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

// solveTwoBone places the knee and foot of a two-bone limb reaching from
// attach toward target. side picks the knee-bend direction (+1 or -1) and
// stays fixed per leg so knees never pop to the other side mid-stride.
//
// The solve is closed form and total: targets beyond full extension clamp
// the foot to maximum reach along the target direction, and targets inside
// the fold limit collapse the limb flat with both bone lengths preserved.
// Every branch returns finite positions.
func solveTwoBone(attach geom.Vec, heading float64, target geom.Vec, upper, lower, side float64) (knee, foot geom.Vec) {
	delta := target.Sub(attach)
	d := delta.Mag()

	var dir geom.Vec
	if d < 1e-9 {
		// Target on the attach point. Fold the limb straight out sideways.
		dir = geom.FromAngle(heading).Perp().Scale(side)
		d = 0
	} else {
		dir = delta.Scale(1 / d)
	}

	reach := upper + lower
	fold := math.Abs(upper - lower)

	switch {
	case d >= reach:
		// Fully extended, clamped at maximum reach.
		knee = attach.Add(dir.Scale(upper))
		foot = attach.Add(dir.Scale(reach))

	case d <= fold:
		// Fully folded: knee, foot, attach, and target are collinear.
		// upper-lower is signed so the foot lands on the correct side of
		// the attach point whichever bone is longer.
		knee = attach.Add(dir.Scale(upper))
		foot = attach.Add(dir.Scale(upper - lower))

	default:
		cosKnee := (upper*upper + d*d - lower*lower) / (2 * upper * d)
		if cosKnee > 1 {
			cosKnee = 1
		} else if cosKnee < -1 {
			cosKnee = -1
		}
		kneeAngle := dir.Angle() + side*math.Acos(cosKnee)
		knee = attach.Add(geom.FromAngle(kneeAngle).Scale(upper))
		foot = target
	}
	return knee, foot
}
