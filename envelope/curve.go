// SPDX-License-Identifier: EPL-2.0

package envelope

import "math"

// Curve selects the easing law that shapes a fade.
type Curve int

const (
	// Linear rises at a constant rate.
	Linear Curve = iota
	// Exponential starts slow and finishes fast (t squared).
	Exponential
	// Logarithmic starts fast and finishes slow (square root of t).
	Logarithmic
	// SCurve is smoothstep: zero slope at both ends.
	SCurve
)

// Apply maps fade progress t in [0, 1] to a gain factor in [0, 1]. The result
// is monotonically non-decreasing in t, with Apply(0) == 0 and Apply(1) == 1
// for every curve. Callers clamp t before calling; Apply itself never fails.
func (c Curve) Apply(t float64) float64 {
	switch c {
	case Exponential:
		return t * t
	case Logarithmic:
		return math.Sqrt(t)
	case SCurve:
		return t * t * (3 - 2*t)
	default:
		return t
	}
}

func (c Curve) String() string {
	switch c {
	case Exponential:
		return "exponential"
	case Logarithmic:
		return "logarithmic"
	case SCurve:
		return "s-curve"
	default:
		return "linear"
	}
}

// ParseCurve resolves a curve name as used in settings and command line
// flags. Both "s-curve" and "scurve" are accepted for SCurve.
func ParseCurve(name string) (Curve, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "exponential":
		return Exponential, nil
	case "logarithmic":
		return Logarithmic, nil
	case "s-curve", "scurve":
		return SCurve, nil
	}
	return Linear, ErrUnknownCurve
}
