// Package driver provides autonomous pointer paths for steering a
// creature when no interactive pointer is available. A Path maps
// elapsed time to a target position; the caller samples it once per
// tick and feeds the point to the creature as its driver.
//
// Paths are pure functions of time. They hold no mutable state, so
// the same Path can drive several creatures and sampling is safe from
// any goroutine.
package driver

import (
	"time"

	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

// Path yields a driver position for any elapsed time.
type Path interface {
	// Name returns the path identifier (for logging).
	Name() string

	// At returns the driver position at time t since path start.
	At(t time.Duration) geom.Vec
}
