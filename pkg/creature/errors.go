package creature

import "errors"

var (
	// ErrSegmentCount is returned when the configured body is too short.
	ErrSegmentCount = errors.New("segment count too small")

	// ErrBodyTuning is returned for non-positive lengths, widths, or wave
	// parameters.
	ErrBodyTuning = errors.New("invalid body tuning")

	// ErrLimbTuning is returned for non-positive limb lengths.
	ErrLimbTuning = errors.New("invalid limb tuning")

	// ErrGaitTuning is returned for out-of-range gait parameters.
	ErrGaitTuning = errors.New("invalid gait tuning")

	// ErrLegPlacement is returned when a leg attach index falls outside
	// the body.
	ErrLegPlacement = errors.New("leg attach out of range")
)
