package creature

const (
	// activitySnap snaps the governor to its bound once within this distance.
	activitySnap = 0.01

	// activeThreshold gates wave time and the gait clock. At or below it the
	// creature counts as resting and all clocks freeze.
	activeThreshold = 0.05
)

// activityGovernor low-pass-filters instantaneous head speed into a smoothed
// activity factor in [0, 1]. The factor gates every secondary motion so the
// body settles into a fixed pose when the driver stops and eases back in
// when it moves again.
type activityGovernor struct {
	level      float64
	settleRate float64
	threshold  float64
}

// update feeds one tick's head speed and returns the new activity level.
// Target is binary (moving or not); the level chases it first-order:
// level += (target - level) * settleRate.
func (g *activityGovernor) update(speed float64) float64 {
	target := 0.0
	if speed > g.threshold {
		target = 1.0
	}
	g.level += (target - g.level) * g.settleRate
	if g.level < activitySnap {
		g.level = 0
	} else if g.level > 1-activitySnap {
		g.level = 1
	}
	return g.level
}

// active reports whether the creature is animate enough for its wave and
// gait clocks to run.
func (g *activityGovernor) active() bool {
	return g.level > activeThreshold
}
