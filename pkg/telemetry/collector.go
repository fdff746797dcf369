// Package telemetry accumulates running locomotion statistics: tick
// durations, head speed, and activity level. The viewer publishes a window
// of these once per second.
package telemetry

import (
	"sync"
	"time"

	"github.com/eclesh/welford"
)

// Stats is one flushed statistics window.
type Stats struct {
	Ticks        uint64
	TickMean     time.Duration
	TickMax      time.Duration
	SpeedMean    float64
	SpeedStddev  float64
	ActivityMean float64
	Uptime       time.Duration
}

// Collector accumulates per-tick samples into a window. It is
// goroutine-safe: the tick loop records while HTTP handlers flush.
type Collector struct {
	mu       sync.Mutex
	started  time.Time
	ticks    uint64
	tickMax  time.Duration
	tickDur  *welford.Stats
	speed    *welford.Stats
	activity *welford.Stats
}

// New creates an empty collector. Uptime counts from here.
func New() *Collector {
	return &Collector{
		started:  time.Now(),
		tickDur:  welford.New(),
		speed:    welford.New(),
		activity: welford.New(),
	}
}

// Record adds one tick's samples to the current window.
func (c *Collector) Record(d time.Duration, speed, activity float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ticks++
	if d > c.tickMax {
		c.tickMax = d
	}
	c.tickDur.Add(float64(d))
	c.speed.Add(speed)
	c.activity.Add(activity)
}

// Snapshot returns the current window without clearing it.
func (c *Collector) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats()
}

// Flush returns the current window and starts a new one. Uptime keeps
// counting across windows.
func (c *Collector) Flush() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.stats()
	c.ticks = 0
	c.tickMax = 0
	c.tickDur = welford.New()
	c.speed = welford.New()
	c.activity = welford.New()
	return out
}

func (c *Collector) stats() Stats {
	s := Stats{
		Ticks:   c.ticks,
		TickMax: c.tickMax,
		Uptime:  time.Since(c.started),
	}
	if c.ticks > 0 {
		s.TickMean = time.Duration(c.tickDur.Mean())
		s.SpeedMean = c.speed.Mean()
		s.SpeedStddev = c.speed.Stddev()
		s.ActivityMean = c.activity.Mean()
	}
	return s
}
