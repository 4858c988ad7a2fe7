// SPDX-License-Identifier: EPL-2.0

package waveform

import "github.com/ik5/audedit/audio"

// Peaks summarizes a clip for display: for every bucket, the maximum sample
// value in Positive and the minimum in Negative. Both slices always have the
// same length.
type Peaks struct {
	Positive []float32
	Negative []float32
}

// Sentinel values reported for a bucket with no samples, so a renderer can
// draw a degenerate request without special-casing it.
const (
	EmptyPositive float32 = -1.0
	EmptyNegative float32 = 1.0
)

// Extract decimates the first channel of a buffer into buckets (min, max)
// pairs. Visualization is mono-representative: additional channels are
// ignored, never mixed in.
//
// The channel is split into buckets contiguous windows of
// floor(frames/buckets) samples; a trailing partial window is dropped. A
// bucket count larger than the sample count produces empty windows, reported
// with the sentinel values above. Extract never fails; a non-positive bucket
// count returns empty Peaks.
func Extract(buf *audio.Buffer, buckets int) Peaks {
	if buckets <= 0 {
		return Peaks{Positive: []float32{}, Negative: []float32{}}
	}

	peaks := Peaks{
		Positive: make([]float32, buckets),
		Negative: make([]float32, buckets),
	}

	var samples []float32
	if buf != nil && buf.Channels() > 0 {
		samples = buf.Channel(0)
	}
	window := len(samples) / buckets

	for i := 0; i < buckets; i++ {
		if window == 0 {
			peaks.Positive[i] = EmptyPositive
			peaks.Negative[i] = EmptyNegative
			continue
		}

		lo, hi := samples[i*window], samples[i*window]
		for _, s := range samples[i*window+1 : (i+1)*window] {
			if s > hi {
				hi = s
			}
			if s < lo {
				lo = s
			}
		}
		peaks.Positive[i] = hi
		peaks.Negative[i] = lo
	}

	return peaks
}
