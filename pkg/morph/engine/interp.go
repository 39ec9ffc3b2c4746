package engine

import "math"

// Ease is the cubic ease-in-out curve applied to raw morph progress before
// continuous interpolation. Ease(0) == 0, Ease(0.5) == 0.5, Ease(1) == 1,
// monotonic non-decreasing on [0,1].
func Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := t - 1
	return 1 + 4*u*u*u
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ValueAt interpolates a continuous record at an eased position. The eased
// position is clamped to exactly 0 and 1 at the boundaries, so the endpoints
// reproduce the source and destination values with no rounding drift.
func (r Record) ValueAt(eased float64) byte {
	eased = clampUnit(eased)
	v := float64(r.Source) + (float64(r.Dest)-float64(r.Source))*eased
	v = math.Round(v)
	if v < 0 {
		v = 0
	}
	if v > 127 {
		v = 127
	}
	return byte(v)
}

// discreteValue resolves a discrete record under a strategy. Snap strategies
// compare the raw, non-eased position so the snap point stays where the user
// set it.
func discreteValue(r Record, raw float64, s Strategy, threshold float64) byte {
	switch s {
	case UseSource:
		return r.Source
	case UseDestination:
		return r.Dest
	case SnapAtThreshold:
		if raw < threshold {
			return r.Source
		}
		return r.Dest
	}
	// Ignore: the builder keeps these records out of the change set, so this
	// is a fallback only.
	return r.Source
}
