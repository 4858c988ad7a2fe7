// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer holds a decoded, multi-channel audio clip in memory.
//
// Samples are stored per channel as float32 values nominally in [-1.0, 1.0].
// All channels have the same length. Processing functions in this module never
// modify a Buffer they receive; every transformation allocates a new one.
type Buffer struct {
	sampleRate int
	data       [][]float32 // data[channel][frame]
}

// NewBuffer allocates a silent buffer with the given sample rate, channel
// count and frame count.
func NewBuffer(sampleRate, channels, frames int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if frames < 0 {
		return nil, ErrNegativeFrameCount
	}

	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
	}

	return &Buffer{sampleRate: sampleRate, data: data}, nil
}

// FromChannels wraps per-channel sample slices in a Buffer. The slices are
// used directly, not copied; the caller must not modify them afterwards.
// All channels must have the same length.
func FromChannels(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrChannelLength
		}
	}

	return &Buffer{sampleRate: sampleRate, data: channels}, nil
}

// FromInterleaved de-interleaves frame-ordered samples (ch0, ch1, ..., ch0,
// ch1, ...) into a Buffer. len(samples) must be a multiple of channels.
func FromInterleaved(sampleRate, channels int, samples []float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrInterleaveSize
	}

	frames := len(samples) / channels
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
		for f := 0; f < frames; f++ {
			data[ch][f] = samples[f*channels+ch]
		}
	}

	return &Buffer{sampleRate: sampleRate, data: data}, nil
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.data) }

// Frames returns the number of sample frames per channel.
func (b *Buffer) Frames() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

// Duration returns the clip length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / float64(b.sampleRate)
}

// Channel returns the sample slice of one channel. The returned slice is the
// buffer's backing storage; callers must treat it as read-only.
func (b *Buffer) Channel(ch int) []float32 { return b.data[ch] }

// Sample returns one sample value.
func (b *Buffer) Sample(ch, frame int) float32 { return b.data[ch][frame] }

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([][]float32, len(b.data))
	for ch := range b.data {
		data[ch] = make([]float32, len(b.data[ch]))
		copy(data[ch], b.data[ch])
	}
	return &Buffer{sampleRate: b.sampleRate, data: data}
}

// Interleaved returns the samples interleaved frame by frame in channel
// order, the layout used by PCM containers and streaming encoders.
func (b *Buffer) Interleaved() []float32 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]float32, channels*frames)
	for ch := 0; ch < channels; ch++ {
		for f := 0; f < frames; f++ {
			out[f*channels+ch] = b.data[ch][f]
		}
	}
	return out
}
