package creature

import "fmt"

// Config holds all construction-time tuning for a creature. Variants
// (centipede, millipede, ...) differ only in these numbers, never in code
// paths; see pkg/bestiary for named presets loaded from JSON.
type Config struct {
	// Body
	Segments      int       `json:"segments"`       // spine length, head included
	SegmentLength float64   `json:"segment_length"` // rest distance between segments
	BaseWidth     float64   `json:"base_width"`     // body half-width at the widest point
	WidthProfile  []float64 `json:"width_profile"`  // width multipliers, resampled head to tail

	// Undulation
	WaveAmplitude float64 `json:"wave_amplitude"` // lateral offset at full activity
	WaveFrequency float64 `json:"wave_frequency"` // full waves along the body
	WaveSpeed     float64 `json:"wave_speed"`     // wave-time increment per tick

	// Activity governor
	SettleRate      float64 `json:"settle_rate"`      // first-order smoothing factor (0-1)
	MotionThreshold float64 `json:"motion_threshold"` // speed above this counts as moving

	// Legs
	LegPairs      int     `json:"leg_pairs"`       // left/right pairs; 0 for a legless body
	FirstLegIndex int     `json:"first_leg_index"` // attach index of the front pair
	LegSpacing    int     `json:"leg_spacing"`     // segments between consecutive pairs
	UpperLength   float64 `json:"upper_length"`    // attach-to-knee limb length
	LowerLength   float64 `json:"lower_length"`    // knee-to-foot limb length

	// Gait
	CycleSpeed   float64 `json:"cycle_speed"`   // gait clock increment per tick at full speed
	StanceRatio  float64 `json:"stance_ratio"`  // fraction of the cycle spent planted
	Metachronal  float64 `json:"metachronal"`   // phase offset per attach index
	StepReach    float64 `json:"step_reach"`    // forward plant offset at rest speed
	SideDistance float64 `json:"side_distance"` // lateral plant offset from the spine
	LiftHeight   float64 `json:"lift_height"`   // peak swing excursion away from the body
	SwingReach   float64 `json:"swing_reach"`   // swing advance as a fraction of total limb length
	SpeedRef     float64 `json:"speed_ref"`     // head speed that counts as full stride
}

// DefaultConfig returns the reference centipede tuning.
func DefaultConfig() Config {
	return Config{
		// Body - long and narrow
		Segments:      22,
		SegmentLength: 9,
		BaseWidth:     7,
		WidthProfile:  []float64{0.55, 1.0, 1.0, 0.85, 0.4},

		// Undulation - shallow fast ripple
		WaveAmplitude: 2.2,
		WaveFrequency: 1.6,
		WaveSpeed:     0.16,

		// Activity governor
		SettleRate:      0.15,
		MotionThreshold: 0.5,

		// Legs - eight pairs along the mid-body
		LegPairs:      8,
		FirstLegIndex: 2,
		LegSpacing:    2,
		UpperLength:   10,
		LowerLength:   12,

		// Gait
		CycleSpeed:   0.035,
		StanceRatio:  0.65,
		Metachronal:  0.28,
		StepReach:    14,
		SideDistance: 13,
		LiftHeight:   6,
		SwingReach:   0.35,
		SpeedRef:     14,
	}
}

// Validate reports the first problem with the configuration, or nil.
// All errors wrap one of the package sentinels.
func (c Config) Validate() error {
	if c.Segments < 2 {
		return fmt.Errorf("%w: got %d, need at least 2", ErrSegmentCount, c.Segments)
	}
	if c.SegmentLength <= 0 {
		return fmt.Errorf("%w: segment_length %v", ErrBodyTuning, c.SegmentLength)
	}
	if c.BaseWidth <= 0 {
		return fmt.Errorf("%w: base_width %v", ErrBodyTuning, c.BaseWidth)
	}
	for i, w := range c.WidthProfile {
		if w <= 0 {
			return fmt.Errorf("%w: width_profile[%d] %v", ErrBodyTuning, i, w)
		}
	}
	if c.WaveAmplitude < 0 || c.WaveFrequency <= 0 || c.WaveSpeed < 0 {
		return fmt.Errorf("%w: wave %v/%v/%v", ErrBodyTuning,
			c.WaveAmplitude, c.WaveFrequency, c.WaveSpeed)
	}
	if c.SettleRate <= 0 || c.SettleRate > 1 {
		return fmt.Errorf("%w: settle_rate %v", ErrBodyTuning, c.SettleRate)
	}
	if c.MotionThreshold <= 0 {
		return fmt.Errorf("%w: motion_threshold %v", ErrBodyTuning, c.MotionThreshold)
	}

	if c.LegPairs < 0 {
		return fmt.Errorf("%w: leg_pairs %d", ErrLegPlacement, c.LegPairs)
	}
	if c.LegPairs == 0 {
		return nil
	}

	if c.UpperLength <= 0 || c.LowerLength <= 0 {
		return fmt.Errorf("%w: upper %v, lower %v", ErrLimbTuning,
			c.UpperLength, c.LowerLength)
	}
	if c.FirstLegIndex < 0 || c.LegSpacing < 1 {
		return fmt.Errorf("%w: first %d, spacing %d", ErrLegPlacement,
			c.FirstLegIndex, c.LegSpacing)
	}
	if last := c.FirstLegIndex + (c.LegPairs-1)*c.LegSpacing; last >= c.Segments {
		return fmt.Errorf("%w: last attach %d, segments %d", ErrLegPlacement,
			last, c.Segments)
	}
	if c.CycleSpeed <= 0 || c.SpeedRef <= 0 {
		return fmt.Errorf("%w: cycle_speed %v, speed_ref %v", ErrGaitTuning,
			c.CycleSpeed, c.SpeedRef)
	}
	if c.StanceRatio <= 0 || c.StanceRatio >= 1 {
		return fmt.Errorf("%w: stance_ratio %v", ErrGaitTuning, c.StanceRatio)
	}
	if c.StepReach < 0 || c.SideDistance < 0 || c.LiftHeight < 0 || c.SwingReach < 0 {
		return fmt.Errorf("%w: reach %v, side %v, lift %v, swing %v", ErrGaitTuning,
			c.StepReach, c.SideDistance, c.LiftHeight, c.SwingReach)
	}
	return nil
}

// widthAt resamples the width profile at segment i via linear interpolation.
// An empty profile means a uniform body.
func (c Config) widthAt(i int) float64 {
	if len(c.WidthProfile) == 0 {
		return c.BaseWidth
	}
	if len(c.WidthProfile) == 1 || c.Segments < 2 {
		return c.BaseWidth * c.WidthProfile[0]
	}
	t := float64(i) / float64(c.Segments-1) * float64(len(c.WidthProfile)-1)
	k := int(t)
	if k >= len(c.WidthProfile)-1 {
		return c.BaseWidth * c.WidthProfile[len(c.WidthProfile)-1]
	}
	f := t - float64(k)
	a := c.WidthProfile[k]
	b := c.WidthProfile[k+1]
	return c.BaseWidth * (a + (b-a)*f)
}
