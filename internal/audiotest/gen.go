// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Test helpers that generate per-channel sample data. They return plain
// [][]float32 rather than audio.Buffer values so package audio's own tests
// can use them without an import cycle; wrap with audio.FromChannels.

// Channels generates channel data with a per-sample waveform function.
func Channels(channels, frames int, waveform func(frame, channel int) float32) [][]float32 {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
		for f := 0; f < frames; f++ {
			data[ch][f] = waveform(f, ch)
		}
	}
	return data
}

// Silent generates all-zero channel data.
func Silent(channels, frames int) [][]float32 {
	return Channels(channels, frames, func(frame, channel int) float32 {
		return 0.0
	})
}

// Constant generates channel data where every sample has the same value.
func Constant(channels, frames int, value float32) [][]float32 {
	return Channels(channels, frames, func(frame, channel int) float32 {
		return value
	})
}

// Sine generates a sine wave at the given frequency, identical per channel.
func Sine(sampleRate, channels, frames int, frequency float64) [][]float32 {
	return Channels(channels, frames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}
