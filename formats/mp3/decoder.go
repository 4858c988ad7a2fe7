// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audedit/audio"
)

// mp3Reader is the part of gomp3.Decoder this package uses, split out to
// allow testing without real MP3 bitstreams.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode reads an entire MP3 stream into an audio.Buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-mp3 always outputs stereo 16-bit little-endian PCM
	return readAll(dec, 2)
}

func readAll(dec mp3Reader, channels int) (*audio.Buffer, error) {
	var samples []float32
	buf := make([]byte, 8192)

	for {
		n, err := dec.Read(buf)
		for i := 0; i < n/2; i++ {
			v := int16(uint16(buf[2*i]) | uint16(buf[2*i+1])<<8)
			samples = append(samples, float32(v)/32768.0)
		}

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
