// SPDX-License-Identifier: EPL-2.0

package envelope

const (
	// Resolution is the number of uniform steps a fade window is sampled at.
	Resolution = 100

	// expFloor is the practical zero for exponential fade edges. A
	// multiplicative ramp is undefined at exactly zero gain, so the curve
	// bottoms out here instead.
	expFloor = 0.001
)

// Envelope is a gain factor curve over a time window within a rendered
// region, materialized as Resolution uniform steps. Outside the window the
// factor is 1, so envelopes compose multiplicatively with the static volume
// and with each other.
type Envelope struct {
	start, end float64
	gains      []float64
}

// FadeIn builds a rising envelope covering [0, min(duration, regionDur)]
// seconds measured from the start of the rendered region. A non-positive
// effective duration yields a neutral envelope.
func FadeIn(duration, regionDur float64, curve Curve) Envelope {
	d := effectiveDuration(duration, regionDur)
	if d <= 0 {
		return Envelope{}
	}

	gains := make([]float64, Resolution+1)
	for i := range gains {
		gains[i] = floorGain(curve, curve.Apply(float64(i)/Resolution))
	}

	return Envelope{start: 0, end: d, gains: gains}
}

// FadeOut builds the descending mirror of FadeIn, covering the final
// min(duration, regionDur) seconds of the rendered region.
func FadeOut(duration, regionDur float64, curve Curve) Envelope {
	d := effectiveDuration(duration, regionDur)
	if d <= 0 {
		return Envelope{}
	}

	gains := make([]float64, Resolution+1)
	for i := range gains {
		gains[i] = floorGain(curve, curve.Apply(1-float64(i)/Resolution))
	}

	return Envelope{start: regionDur - d, end: regionDur, gains: gains}
}

// GainAt returns the gain factor at time t seconds from the start of the
// region. Times outside the fade window return 1. Within the window the
// sampled curve is interpolated linearly; the window endpoints are exact.
func (e Envelope) GainAt(t float64) float64 {
	if len(e.gains) == 0 || t < e.start || t > e.end {
		return 1
	}

	pos := (t - e.start) / (e.end - e.start) * Resolution
	i := int(pos)
	if i >= Resolution {
		return e.gains[Resolution]
	}

	frac := pos - float64(i)
	return e.gains[i]*(1-frac) + e.gains[i+1]*frac
}

// Active reports whether the envelope shapes any part of the region.
func (e Envelope) Active() bool { return len(e.gains) > 0 }

// A fade longer than the region is clipped to the region.
func effectiveDuration(duration, regionDur float64) float64 {
	if duration > regionDur {
		return regionDur
	}
	return duration
}

func floorGain(curve Curve, g float64) float64 {
	if curve == Exponential && g < expFloor {
		return expFloor
	}
	return g
}
