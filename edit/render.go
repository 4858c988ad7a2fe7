// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"fmt"
	"math"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/envelope"
)

// Render applies an edit to a source buffer and returns the result as a new
// buffer: the crop region is cut out, then every frame is scaled by the
// static volume and by the fade envelopes where they are active. The sample
// rate and channel count are preserved exactly; the source is not modified.
//
// Crop times quantize to frame indices by floor(t * rate). A region that
// quantizes to zero or fewer frames fails with ErrEmptyRegion. A crop end
// past the source is clipped to the source length; remaining range checks
// are the caller's responsibility (see Settings.Validate).
func Render(src *audio.Buffer, s Settings) (*audio.Buffer, error) {
	if src == nil || src.Channels() == 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidBuffer
	}

	rate := src.SampleRate()
	startFrame := int(math.Floor(s.CropStart * float64(rate)))
	endFrame := int(math.Floor(s.CropEnd * float64(rate)))
	if startFrame < 0 {
		startFrame = 0
	}
	if endFrame > src.Frames() {
		endFrame = src.Frames()
	}

	cropped := endFrame - startFrame
	if cropped <= 0 {
		return nil, ErrEmptyRegion
	}

	gains := frameGains(s, cropped, rate)

	// The gain curve is channel-independent, so it is computed once above and
	// each channel gets the same per-frame transform.
	data := make([][]float32, src.Channels())
	for ch := range data {
		in := src.Channel(ch)
		out := make([]float32, cropped)
		for i := 0; i < cropped; i++ {
			out[i] = float32(float64(in[startFrame+i]) * gains[i])
		}
		data[ch] = out
	}

	rendered, err := audio.FromChannels(rate, data)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return rendered, nil
}

// frameGains composes the instantaneous gain for every output frame: static
// volume, times the fade-in envelope inside its window, times the fade-out
// envelope inside its window. When the fade windows overlap, both factors
// apply at each frame.
func frameGains(s Settings, frames, rate int) []float64 {
	regionDur := float64(frames) / float64(rate)

	var fadeIn, fadeOut envelope.Envelope
	if s.FadeIn.Enabled {
		fadeIn = envelope.FadeIn(s.FadeIn.Duration, regionDur, s.FadeIn.Curve)
	}
	if s.FadeOut.Enabled {
		fadeOut = envelope.FadeOut(s.FadeOut.Duration, regionDur, s.FadeOut.Curve)
	}

	gains := make([]float64, frames)
	for i := range gains {
		t := float64(i) / float64(rate)
		g := s.Volume
		if fadeIn.Active() {
			g *= fadeIn.GainAt(t)
		}
		if fadeOut.Active() {
			g *= fadeOut.GainAt(t)
		}
		gains[i] = g
	}

	return gains
}
