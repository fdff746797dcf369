// Package geom provides the small 2D vector and angle kit shared by the
// creature core and its renderers. Everything is a value; nothing allocates.
package geom

import (
	"fmt"
	"math"
)

// Vec is a 2D point or direction in world units.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zero is the origin.
var Zero = Vec{}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromAngle returns the unit vector pointing along theta (radians).
func FromAngle(theta float64) Vec {
	return Vec{X: math.Cos(theta), Y: math.Sin(theta)}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Mag returns the length of v.
func (v Vec) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// MagSq returns the squared length of v, avoiding the sqrt.
func (v Vec) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the distance between v and w.
func (v Vec) Dist(w Vec) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// DistSq returns the squared distance between v and w.
func (v Vec) DistSq(w Vec) float64 {
	dx := v.X - w.X
	dy := v.Y - w.Y
	return dx*dx + dy*dy
}

// Normalize returns the unit vector in v's direction. The zero vector
// normalizes to itself rather than NaN.
func (v Vec) Normalize() Vec {
	m := v.Mag()
	if m == 0 {
		return Vec{}
	}
	return Vec{X: v.X / m, Y: v.Y / m}
}

// Perp returns v rotated 90 degrees counterclockwise.
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// Rotate returns v rotated by theta radians counterclockwise.
func (v Vec) Rotate(theta float64) Vec {
	sin, cos := math.Sincos(theta)
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Angle returns the heading of v in radians, in (-pi, pi].
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp returns the point a fraction t of the way from v to w.
func (v Vec) Lerp(w Vec, t float64) Vec {
	return Vec{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// NormalizeAngle wraps theta into (-pi, pi].
func NormalizeAngle(theta float64) float64 {
	for theta > math.Pi {
		theta -= 2 * math.Pi
	}
	for theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}
