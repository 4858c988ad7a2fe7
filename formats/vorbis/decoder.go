// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audedit/audio"
)

// oggReader is the part of oggvorbis.Reader this package uses, split out to
// allow testing without real Ogg Vorbis bitstreams.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode reads an entire Ogg Vorbis stream into an audio.Buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return readAll(dec)
}

func readAll(dec oggReader) (*audio.Buffer, error) {
	channels := dec.Channels()
	var samples []float32
	buf := make([]float32, 4096)

	for {
		// oggvorbis delivers interleaved float32 values directly
		n, err := dec.Read(buf)
		samples = append(samples, buf[:n]...)

		if err == io.EOF || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	// drop a trailing partial frame
	samples = samples[:len(samples)-len(samples)%channels]

	b, err := audio.FromInterleaved(dec.SampleRate(), channels, samples)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return b, nil
}
