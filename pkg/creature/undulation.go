package creature

import "math"

// undulationOscillator yields the lateral body-wave displacement per segment
// index. Wave time only advances while the creature is active, so the ripple
// freezes in place at rest instead of swimming through a standing body.
type undulationOscillator struct {
	amplitude float64
	frequency float64
	speed     float64
	segments  int
	waveTime  float64
}

// advance moves wave time forward by one tick.
func (o *undulationOscillator) advance() {
	o.waveTime += o.speed
}

// offset returns the lateral displacement for segment index i, scaled by the
// current activity level. The taper term pins both ends of the body so the
// head tracks the driver cleanly and the tail does not whip.
func (o *undulationOscillator) offset(i int, activity float64) float64 {
	if o.segments < 2 || activity == 0 {
		return 0
	}
	phase := 2*math.Pi*o.frequency*float64(i)/float64(o.segments) - o.waveTime
	taper := math.Sin(math.Pi * float64(i) / float64(o.segments-1))
	return o.amplitude * math.Sin(phase) * taper * activity
}
