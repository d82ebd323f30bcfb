package geo

// DefaultSmoothingAlpha balances jitter suppression against responsiveness
// for typical device orientation sensors.
const DefaultSmoothingAlpha = 0.3

// HeadingSmoother applies an exponential moving average over the circular
// heading domain, taking the shortest angular path across the 0/360 wrap.
// It keeps only its own last value and is meant to be owned by a single
// sensor stream; no internal locking.
type HeadingSmoother struct {
	alpha   float64
	last    float64
	started bool
}

// NewHeadingSmoother creates a smoother with the given factor in (0,1].
// Values outside that range fall back to DefaultSmoothingAlpha.
func NewHeadingSmoother(alpha float64) *HeadingSmoother {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultSmoothingAlpha
	}

	return &HeadingSmoother{alpha: alpha}
}

// Smooth folds a raw heading sample into the running average and returns the
// new smoothed heading in [0,360). The first sample passes through unchanged.
// Samples exactly 180 degrees apart are ambiguous; the positive rotation
// direction is chosen consistently.
func (s *HeadingSmoother) Smooth(raw float64) float64 {
	raw = NormalizeHeading(raw)

	if !s.started {
		s.started = true
		s.last = raw

		return raw
	}

	diff := raw - s.last
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}

	s.last = NormalizeHeading(s.last + diff*s.alpha)

	return s.last
}

// Reset clears the smoother state so the next sample passes through.
func (s *HeadingSmoother) Reset() {
	s.started = false
	s.last = 0
}
