// Package anatomy derives drawable geometry from a pose snapshot.
// Every renderer draws the same hull, ribs, antennae and cerci, so
// the creature looks the same on a canvas, a GPU window or a
// terminal grid. All functions are pure reads of the snapshot.
package anatomy

import (
	"math"

	"github.com/SkyPlay-Code/centipede/pkg/creature"
	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

const (
	// antennaSpread is the angle between the heading and an antenna
	// base direction, in radians.
	antennaSpread = 0.45

	// antennaCurl widens the spread toward the antenna tip, bending
	// the curve outward.
	antennaCurl = 1.7

	// antennaScale sets antenna length as a multiple of head width.
	antennaScale = 2.4

	// cercusSpread is the angle between the reversed tail heading
	// and a cercus, in radians.
	cercusSpread = 0.35

	// cercusScale sets cercus length as a multiple of tail width.
	cercusScale = 1.8
)

// Polyline is an open chain of points to be stroked in order.
type Polyline []geom.Vec

// Outline returns the body hull: down one flank from head to tail,
// then back along the other flank to the head. Closing the loop is
// left to the renderer. Returns nil for an empty snapshot.
func Outline(snap *creature.Snapshot) Polyline {
	n := len(snap.Segments)
	if n == 0 {
		return nil
	}

	hull := make(Polyline, 0, 2*n)
	for i := 0; i < n; i++ {
		hull = append(hull, flankPoint(&snap.Segments[i], 1))
	}
	for i := n - 1; i >= 0; i-- {
		hull = append(hull, flankPoint(&snap.Segments[i], -1))
	}
	return hull
}

// Ribs returns one lateral stroke per segment, spanning the body from
// flank to flank through the segment center. The width profile tapers
// the strokes toward head and tail.
func Ribs(snap *creature.Snapshot) []Polyline {
	ribs := make([]Polyline, 0, len(snap.Segments))
	for i := range snap.Segments {
		seg := &snap.Segments[i]
		ribs = append(ribs, Polyline{flankPoint(seg, 1), flankPoint(seg, -1)})
	}
	return ribs
}

// Antennae returns two 3-point curves sweeping forward from the head,
// mirrored across the heading and curling outward toward the tips.
// Returns zero-value polylines for an empty snapshot.
func Antennae(snap *creature.Snapshot) [2]Polyline {
	var out [2]Polyline
	if len(snap.Segments) == 0 {
		return out
	}

	head := &snap.Segments[0]
	length := head.Width * antennaScale
	out[0] = feeler(head.Position, head.Angle, antennaSpread, antennaCurl, length)
	out[1] = feeler(head.Position, head.Angle, -antennaSpread, antennaCurl, length)
	return out
}

// TailCerci returns two short filaments trailing backward from the
// last segment. Returns zero-value polylines for an empty snapshot.
func TailCerci(snap *creature.Snapshot) [2]Polyline {
	var out [2]Polyline
	if len(snap.Segments) == 0 {
		return out
	}

	tail := &snap.Segments[len(snap.Segments)-1]
	back := geom.NormalizeAngle(tail.Angle + math.Pi)
	length := tail.Width * cercusScale
	out[0] = feeler(tail.Position, back, cercusSpread, antennaCurl, length)
	out[1] = feeler(tail.Position, back, -cercusSpread, antennaCurl, length)
	return out
}

// flankPoint projects a segment center out to its body edge on one
// side. side is +1 or -1.
func flankPoint(seg *creature.SegmentPose, side float64) geom.Vec {
	lateral := geom.FromAngle(seg.Angle).Perp()
	return seg.Position.Add(lateral.Scale(side * seg.Width / 2))
}

// feeler builds a 3-point curve from base along heading, deflected by
// spread at the root and by spread*curl at the tip.
func feeler(base geom.Vec, heading, spread, curl, length float64) Polyline {
	rootDir := geom.FromAngle(heading + spread)
	tipDir := geom.FromAngle(heading + spread*curl)

	mid := base.Add(rootDir.Scale(length * 0.55))
	tip := base.Add(tipDir.Scale(length))
	return Polyline{base, mid, tip}
}
