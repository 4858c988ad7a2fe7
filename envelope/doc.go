// SPDX-License-Identifier: EPL-2.0

// Package envelope provides fade gain curves for the edit pipeline.
//
// # Curves
//
// Four easing laws shape a fade, selected by the Curve type:
//   - Linear: constant rate
//   - Exponential: t², slow start, fast finish
//   - Logarithmic: √t, fast start, slow finish
//   - SCurve: smoothstep t²(3−2t), gentle at both ends
//
// Every curve maps progress 0 to gain 0 and progress 1 to gain 1 and is
// monotone in between:
//
//	g := envelope.SCurve.Apply(0.5) // 0.5
//
// # Envelopes
//
// FadeIn and FadeOut turn a curve plus a fade duration into a gain-over-time
// window within a rendered region. The curve is sampled at a fixed resolution
// of 100 uniform steps across the window; fade-out uses the descending mirror
// of the same curve. Querying a time outside the window returns the neutral
// factor 1, so a renderer can multiply envelope gains unconditionally:
//
//	in := envelope.FadeIn(0.25, regionDur, envelope.Linear)
//	out := envelope.FadeOut(0.5, regionDur, envelope.SCurve)
//	gain := volume * in.GainAt(t) * out.GainAt(t)
//
// A fade longer than the region is clipped to the region. Exponential fades
// bottom out at 0.001 instead of zero, since a multiplicative ramp has no
// meaningful zero point.
package envelope
