// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/audedit/audio"
)

type Decoder struct{}

// Decode reads an entire AIFF stream into an audio.Buffer. PCM bit depths of
// 8, 16, 24 and 32 are normalized to float32 in [-1, 1].
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	intBuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding aiff pcm: %w", err)
	}
	if intBuf.Format == nil || intBuf.Format.NumChannels < 1 || intBuf.Format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	scale := normScale(int(dec.BitDepth))
	if scale == 0 {
		return nil, ErrUnsupportedBitDepth
	}

	channels := intBuf.Format.NumChannels
	samples := make([]float32, len(intBuf.Data)-len(intBuf.Data)%channels)
	for i := range samples {
		samples[i] = float32(intBuf.Data[i]) / scale
	}

	buf, err := audio.FromInterleaved(intBuf.Format.SampleRate, channels, samples)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return buf, nil
}

func normScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	}
	return 0
}
