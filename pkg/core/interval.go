package core

import "math"

// Interval is a closed scalar range [Min, Max] used to bound valid
// intersection distances along a ray.
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval with the given bounds
func NewInterval(minVal, maxVal float64) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// UniverseInterval covers all of the real line
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// EmptyInterval contains no values
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// ShadowInterval returns the standard intersection interval (epsilon, +inf).
// The epsilon lower bound keeps a scattered ray from re-hitting the surface
// it just left due to floating point error.
func ShadowInterval() Interval {
	return Interval{Min: 1e-3, Max: math.Inf(1)}
}

// Contains reports whether t lies in [Min, Max]
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t <= i.Max
}

// Surrounds reports whether t lies strictly inside (Min, Max)
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}

// Size returns the length of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Clamp limits t to [Min, Max]
func (i Interval) Clamp(t float64) float64 {
	if t < i.Min {
		return i.Min
	}
	if t > i.Max {
		return i.Max
	}
	return t
}
