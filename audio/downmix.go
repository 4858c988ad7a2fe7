// SPDX-License-Identifier: EPL-2.0

package audio

// DownmixMono averages all channels of a buffer into a single mono channel.
// A mono buffer is returned as a copy unchanged.
func DownmixMono(src *Buffer) *Buffer {
	if src.Channels() == 1 {
		return src.Clone()
	}

	channels := src.Channels()
	frames := src.Frames()
	mono := make([]float32, frames)

	switch channels {
	case 2: // Stereo (most common)
		left, right := src.Channel(0), src.Channel(1)
		for f := 0; f < frames; f++ {
			mono[f] = (left[f] + right[f]) * 0.5
		}
	default:
		invChannels := float32(1.0) / float32(channels)
		for f := 0; f < frames; f++ {
			sum := float32(0)
			for ch := 0; ch < channels; ch++ {
				sum += src.Sample(ch, f)
			}
			mono[f] = sum * invChannels
		}
	}

	return &Buffer{sampleRate: src.sampleRate, data: [][]float32{mono}}
}
