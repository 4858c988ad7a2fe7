// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/audedit/utils"
)

// Resample converts a buffer to a target sample rate using cubic
// interpolation. The channel count is preserved; each channel is resampled
// independently. The source buffer is not modified.
//
// The edit pipeline itself never changes the sample rate; this is an export
// convenience for callers that need a specific output rate.
func Resample(src *Buffer, targetRate int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if src.SampleRate() == targetRate {
		return src.Clone(), nil
	}

	srcFrames := src.Frames()
	outFrames := int(float64(srcFrames) * float64(targetRate) / float64(src.SampleRate()))

	out, err := NewBuffer(targetRate, src.Channels(), outFrames)
	if err != nil {
		return nil, err
	}

	// How many source frames advance per output frame.
	ratio := float64(src.SampleRate()) / float64(targetRate)

	for ch := 0; ch < src.Channels(); ch++ {
		in := src.Channel(ch)
		dst := out.Channel(ch)

		for i := 0; i < outFrames; i++ {
			pos := float64(i) * ratio
			idx := int(pos)
			frac := float32(pos - float64(idx))

			// Catmull-Rom needs one frame on each side; clamp at the edges.
			y0 := in[clampIndex(idx-1, srcFrames)]
			y1 := in[clampIndex(idx, srcFrames)]
			y2 := in[clampIndex(idx+1, srcFrames)]
			y3 := in[clampIndex(idx+2, srcFrames)]

			dst[i] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
		}
	}

	return out, nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
