// SPDX-License-Identifier: EPL-2.0

// Package edit implements the offline edit pipeline: crop, volume and fades
// composed into one deterministic rendering pass.
//
// # Settings
//
// A Settings value describes one edit declaratively. Build it from defaults
// and adjust fields as the user changes controls:
//
//	s := edit.DefaultSettings(src.Duration())
//	s.CropStart = 0.5
//	s.CropEnd = 1.5
//	s.Volume = 0.8
//	s.FadeIn = edit.Fade{Enabled: true, Duration: 0.25, Curve: envelope.Linear}
//
// # Rendering
//
// Render cuts the crop region out of the source and scales every frame by
// the composed gain:
//
//	out, err := edit.Render(src, s)
//	if errors.Is(err, edit.ErrEmptyRegion) {
//	    // crop start and end quantized to the same frame
//	}
//
// The gain at each frame is the product of the static volume, the fade-in
// envelope and the fade-out envelope. When both fades are enabled and their
// windows overlap (combined durations exceed the region), the factors
// multiply — the clip dips through both curves rather than one replacing the
// other.
//
// Rendering is deterministic: the same buffer and settings always produce
// the same output, so there is no retry path anywhere in the package.
package edit
