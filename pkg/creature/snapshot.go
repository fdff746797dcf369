package creature

import "github.com/SkyPlay-Code/centipede/pkg/geom"

// SegmentPose is one spine element of a snapshot.
type SegmentPose struct {
	Position geom.Vec
	Angle    float64
	Width    float64
}

// LegPose is one fully solved limb of a snapshot.
type LegPose struct {
	AttachIndex int
	Side        float64
	Attach      geom.Vec
	Knee        geom.Vec
	Foot        geom.Vec
	State       LegState
	Phase       float64
}

// Snapshot is the complete drawable pose produced by one Tick. Its slices
// alias buffers owned by the Creature and are overwritten by the next Tick
// or Reset; copy what you need to keep. Legs holds only the limbs that were
// solvable this tick, ordered front to back, the positive-side leg of each
// pair before its partner.
type Snapshot struct {
	Segments []SegmentPose
	Legs     []LegPose
	Activity float64
	Speed    float64
}
