package creature

import (
	"math"

	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

// LegState is the step-cycle phase of a single leg.
type LegState uint8

const (
	// Stance means the foot is planted and the body levers over it.
	Stance LegState = iota
	// Swing means the foot is airborne, arcing toward its next hold.
	Swing
)

func (s LegState) String() string {
	switch s {
	case Stance:
		return "STANCE"
	case Swing:
		return "SWING"
	default:
		return "UNKNOWN"
	}
}

// leg is the persistent record for one limb. Legs are created once at
// construction and keep their slot for the creature's lifetime. plant is
// only meaningful while state == Stance.
type leg struct {
	attachIndex int
	side        float64 // +1 and -1 pick opposite flanks of the spine
	offset      float64 // metachronal phase offset in [0, 1)
	phase       float64
	state       LegState
	plant       geom.Vec
}

// gaitController owns the shared gait clock and the per-leg stance/swing
// state machines.
type gaitController struct {
	legs  []leg
	clock float64
}

// newGaitController lays legs out in pairs at fixed attach indices. The
// metachronal offset grows with the attach index so steps ripple down the
// body, and the two legs of a pair run half a cycle apart.
func newGaitController(cfg *Config) *gaitController {
	legs := make([]leg, 0, cfg.LegPairs*2)
	for pair := 0; pair < cfg.LegPairs; pair++ {
		idx := cfg.FirstLegIndex + pair*cfg.LegSpacing
		base := cfg.Metachronal * float64(idx)
		legs = append(legs,
			leg{attachIndex: idx, side: +1, offset: frac(base)},
			leg{attachIndex: idx, side: -1, offset: frac(base + 0.5)},
		)
	}
	return &gaitController{legs: legs}
}

// seed zeroes the gait clock, recomputes every phase, and plants all stance
// legs against the freshly laid-out chain.
func (g *gaitController) seed(segs []segment, cfg *Config) {
	g.clock = 0
	for i := range g.legs {
		l := &g.legs[i]
		l.phase = frac(l.offset)
		l.state = Swing
		if l.phase < cfg.StanceRatio {
			l.state = Stance
		}
		if l.state == Stance && l.attachIndex >= 0 && l.attachIndex < len(segs) {
			l.plant = plantTarget(&segs[l.attachIndex], l.side, 0, cfg)
		}
	}
}

// update advances the gait clock (only while the creature is active) and
// recomputes every leg's pose, appending to out. Legs whose attach index
// falls outside the current chain are skipped for the tick; that only
// happens transiently around a reset and is not an error.
func (g *gaitController) update(segs []segment, cfg *Config, speed, activity float64, out []LegPose) []LegPose {
	if activity > activeThreshold {
		g.clock += cfg.CycleSpeed * clamp(speed/cfg.SpeedRef, 0, 1) * activity
	}

	for i := range g.legs {
		l := &g.legs[i]
		l.phase = frac(g.clock + l.offset)

		next := Swing
		if l.phase < cfg.StanceRatio {
			next = Stance
		}

		if l.attachIndex < 0 || l.attachIndex >= len(segs) {
			l.state = next
			continue
		}
		seg := &segs[l.attachIndex]

		if next == Stance && l.state == Swing {
			// Touchdown: fix the hold for the whole stance interval.
			l.plant = plantTarget(seg, l.side, speed, cfg)
		}
		l.state = next

		pose := LegPose{
			AttachIndex: l.attachIndex,
			Side:        l.side,
			Attach:      seg.pos,
			State:       l.state,
			Phase:       l.phase,
		}
		if l.state == Stance {
			pose.Knee, pose.Foot = solveTwoBone(seg.pos, seg.angle, l.plant,
				cfg.UpperLength, cfg.LowerLength, l.side)
		} else {
			pose.Knee, pose.Foot = swingPose(seg, l, cfg, activity)
		}
		out = append(out, pose)
	}
	return out
}

// plantTarget picks the world position a foot grabs at touchdown. The hold
// sits ahead of the attach segment, farther ahead the faster the head is
// moving, so the body has the whole stance interval to walk over it.
func plantTarget(seg *segment, side, speed float64, cfg *Config) geom.Vec {
	forward := geom.FromAngle(seg.angle)
	stretch := cfg.StepReach * (1 + clamp(speed/cfg.SpeedRef, 0, 1))
	return seg.pos.
		Add(forward.Scale(stretch)).
		Add(forward.Perp().Scale(side * cfg.SideDistance))
}

// swingPose arcs the foot through the recovery stroke in the attach
// segment's local frame: a sine lift away from the body plus a monotonic
// forward reach toward the next hold. The knee sits at upper length along
// the stroke and the foot is re-projected whenever the lower bone would
// overstretch.
func swingPose(seg *segment, l *leg, cfg *Config, activity float64) (knee, foot geom.Vec) {
	progress := (l.phase - cfg.StanceRatio) / (1 - cfg.StanceRatio)

	lift := math.Sin(progress*math.Pi) * cfg.LiftHeight * activity
	reach := progress * cfg.SwingReach * (cfg.UpperLength + cfg.LowerLength)

	forward := geom.FromAngle(seg.angle)
	lateral := forward.Perp().Scale(l.side)
	target := seg.pos.
		Add(forward.Scale(reach)).
		Add(lateral.Scale(cfg.SideDistance + lift))

	dir := target.Sub(seg.pos).Normalize()
	if dir == geom.Zero {
		dir = lateral
	}
	knee = seg.pos.Add(dir.Scale(cfg.UpperLength))
	foot = target
	if knee.Dist(foot) > cfg.LowerLength {
		foot = knee.Add(foot.Sub(knee).Normalize().Scale(cfg.LowerLength))
	}
	return knee, foot
}
