package creature

import "github.com/SkyPlay-Code/centipede/pkg/geom"

// Creature owns the full locomotion state: spine chain, wave oscillator,
// activity governor, and gait controller. One Creature is ticked from a
// single goroutine; it is not safe for concurrent use.
type Creature struct {
	cfg      Config
	chain    chainSolver
	osc      undulationOscillator
	governor activityGovernor
	gait     *gaitController
	speed    float64
	snap     Snapshot
}

// New builds a creature from cfg, seeded with its head at the origin.
func New(cfg Config) (*Creature, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Detach the profile slice so later caller mutation can't retune us.
	cfg.WidthProfile = append([]float64(nil), cfg.WidthProfile...)

	c := &Creature{
		cfg: cfg,
		chain: chainSolver{
			segs:       make([]segment, cfg.Segments),
			restLength: cfg.SegmentLength,
		},
		osc: undulationOscillator{
			amplitude: cfg.WaveAmplitude,
			frequency: cfg.WaveFrequency,
			speed:     cfg.WaveSpeed,
			segments:  cfg.Segments,
		},
		governor: activityGovernor{
			settleRate: cfg.SettleRate,
			threshold:  cfg.MotionThreshold,
		},
		gait: newGaitController(&cfg),
	}
	for i := range c.chain.segs {
		c.chain.segs[i].width = cfg.widthAt(i)
	}
	c.snap.Segments = make([]SegmentPose, cfg.Segments)
	c.snap.Legs = make([]LegPose, 0, len(c.gait.legs))

	c.Reset(geom.Zero)
	return c, nil
}

// Tick consumes one driver sample and advances the creature one frame:
// governor, oscillator, chain, gait, in that order. The head is pinned to
// driver exactly, however far it jumped. The returned snapshot stays valid
// until the next Tick or Reset.
func (c *Creature) Tick(driver geom.Vec) *Snapshot {
	c.speed = driver.Dist(c.chain.segs[0].pos)
	activity := c.governor.update(c.speed)

	if c.governor.active() {
		c.osc.advance()
	}
	c.chain.solve(driver, &c.osc, activity)
	c.snap.Legs = c.gait.update(c.chain.segs, &c.cfg, c.speed, activity, c.snap.Legs[:0])

	for i := range c.chain.segs {
		s := &c.chain.segs[i]
		c.snap.Segments[i] = SegmentPose{Position: s.pos, Angle: s.angle, Width: s.width}
	}
	c.snap.Activity = activity
	c.snap.Speed = c.speed
	return &c.snap
}

// Reset re-seeds the creature wholesale with its head at head: straight
// chain, zeroed clocks and activity, stance legs re-planted. It must only
// run between ticks.
func (c *Creature) Reset(head geom.Vec) {
	c.chain.seed(head)
	c.osc.waveTime = 0
	c.governor.level = 0
	c.speed = 0
	c.gait.seed(c.chain.segs, &c.cfg)
}

// Activity returns the smoothed activity factor in [0, 1].
func (c *Creature) Activity() float64 { return c.governor.level }

// Speed returns the head speed measured on the last Tick.
func (c *Creature) Speed() float64 { return c.speed }

// Config returns a copy of the creature's tuning.
func (c *Creature) Config() Config {
	cfg := c.cfg
	cfg.WidthProfile = append([]float64(nil), cfg.WidthProfile...)
	return cfg
}
