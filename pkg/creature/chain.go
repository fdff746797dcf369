package creature

import "github.com/SkyPlay-Code/centipede/pkg/geom"

// headingEpsilon is the minimum per-tick head movement that updates the head
// orientation. Below it the previous heading is kept, so a stationary or
// micro-jittering driver never spins the head.
const headingEpsilon = 0.1

// segment is one spine element. Index 0 is the head. Segments live in a
// fixed slice allocated at construction and are mutated in place every tick.
type segment struct {
	pos   geom.Vec
	angle float64 // heading toward the previous segment (the head leads)
	width float64
}

// chainSolver cascades the body behind the head in a single forward pass.
// There is no global relaxation step: each segment chases the one ahead of
// it at rest distance, which is what gives the body its whip-like lag.
type chainSolver struct {
	segs       []segment
	restLength float64
}

// solve pins the head to the driver position and walks the rest of the
// chain. The undulation offset for each index is folded into the follow
// target before the segment commits, so spacing stays within one wave
// amplitude of rest length rather than exact.
func (c *chainSolver) solve(head geom.Vec, osc *undulationOscillator, activity float64) {
	segs := c.segs

	delta := head.Sub(segs[0].pos)
	if delta.Mag() > headingEpsilon {
		segs[0].angle = delta.Angle()
	}
	segs[0].pos = head

	for i := 1; i < len(segs); i++ {
		prev := &segs[i-1]

		dir := prev.pos.Sub(segs[i].pos).Normalize()
		if dir == geom.Zero {
			// Segment sits exactly on its predecessor (head teleport).
			// Trail it out behind the predecessor's heading.
			dir = geom.FromAngle(prev.angle)
		}
		target := prev.pos.Sub(dir.Scale(c.restLength))

		lateral := geom.FromAngle(prev.angle).Perp().Scale(osc.offset(i, activity))
		target = target.Add(lateral)

		segs[i].pos = target
		segs[i].angle = prev.pos.Sub(target).Angle()
	}
}

// seed lays the chain out in a straight line trailing -x from the head and
// resets every orientation. Used at construction and on Reset.
func (c *chainSolver) seed(head geom.Vec) {
	for i := range c.segs {
		c.segs[i].pos = geom.V(head.X-float64(i)*c.restLength, head.Y)
		c.segs[i].angle = 0
	}
}
