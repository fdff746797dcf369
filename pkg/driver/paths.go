package driver

import (
	"math"
	"time"

	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

// ============================================================
// Orbit - Circles a fixed center at constant speed
// ============================================================

// Orbit traces a circle around a center point.
type Orbit struct {
	center geom.Vec
	radius float64
	period time.Duration
}

// NewOrbit creates a circular path. period is the time for one full
// revolution.
func NewOrbit(center geom.Vec, radius float64, period time.Duration) *Orbit {
	return &Orbit{center: center, radius: radius, period: period}
}

// Name returns "orbit".
func (o *Orbit) Name() string {
	return "orbit"
}

// At returns the orbit position at time t.
func (o *Orbit) At(t time.Duration) geom.Vec {
	if o.period <= 0 {
		return o.center.Add(geom.V(o.radius, 0))
	}
	angle := 2 * math.Pi * t.Seconds() / o.period.Seconds()
	return o.center.Add(geom.FromAngle(angle).Scale(o.radius))
}

// ============================================================
// Lissajous - Figure-weaving curve inside a rectangle
// ============================================================

// Lissajous traces a lissajous curve. The x and y axes oscillate at
// different integer multiples of the base rate, which weaves the
// path back and forth across its bounding box.
type Lissajous struct {
	center geom.Vec
	amp    geom.Vec // half-extent of the bounding box
	a, b   float64  // frequency multipliers for x and y
	phase  float64  // x phase lead in radians
	period time.Duration
}

// NewLissajous creates a 3:2 lissajous path. period is the time for
// one full figure.
func NewLissajous(center, amp geom.Vec, period time.Duration) *Lissajous {
	return &Lissajous{
		center: center,
		amp:    amp,
		a:      3,
		b:      2,
		phase:  math.Pi / 2,
		period: period,
	}
}

// NewLissajousRatio creates a lissajous path with an explicit a:b
// frequency ratio and x phase lead.
func NewLissajousRatio(center, amp geom.Vec, a, b, phase float64, period time.Duration) *Lissajous {
	return &Lissajous{center: center, amp: amp, a: a, b: b, phase: phase, period: period}
}

// Name returns "lissajous".
func (l *Lissajous) Name() string {
	return "lissajous"
}

// At returns the curve position at time t.
func (l *Lissajous) At(t time.Duration) geom.Vec {
	if l.period <= 0 {
		return l.center
	}
	w := 2 * math.Pi * t.Seconds() / l.period.Seconds()
	return geom.V(
		l.center.X+l.amp.X*math.Sin(l.a*w+l.phase),
		l.center.Y+l.amp.Y*math.Sin(l.b*w),
	)
}

// ============================================================
// Wander - Smooth aimless roaming inside a rectangle
// ============================================================

// Wander roams inside a rectangle centered on center. The position is
// a fixed blend of incommensurate sine waves, so the path never
// repeats exactly and needs no random source. extent is the half-size
// of the roaming box; rate is the base angular rate in radians per
// second.
type Wander struct {
	center geom.Vec
	extent geom.Vec
	rate   float64
}

// NewWander creates a wandering path.
func NewWander(center, extent geom.Vec, rate float64) *Wander {
	return &Wander{center: center, extent: extent, rate: rate}
}

// Name returns "wander".
func (w *Wander) Name() string {
	return "wander"
}

// At returns the wander position at time t. The sine weights sum to
// one, so the point never leaves the extent box.
func (w *Wander) At(t time.Duration) geom.Vec {
	s := t.Seconds() * w.rate
	x := 0.62*math.Sin(s) + 0.38*math.Sin(s*0.53+1.7)
	y := 0.62*math.Sin(s*0.79+0.9) + 0.38*math.Sin(s*0.41+2.3)
	return geom.V(w.center.X+w.extent.X*x, w.center.Y+w.extent.Y*y)
}
