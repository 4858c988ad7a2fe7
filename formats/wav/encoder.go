// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/utils"
)

const headerSize = 44

// Encode writes buf as a canonical 16-bit integer PCM WAV file: a 44-byte
// RIFF/WAVE header followed by the samples interleaved frame by frame in
// channel order, all little-endian. Every sample is clamped to [-1, 1] and
// quantized with symmetric scaling (see utils.SampleToInt16).
//
// Encoding is deterministic and total: a zero-frame buffer produces a valid
// header-only file.
func Encode(w io.Writer, buf *audio.Buffer) error {
	channels := buf.Channels()
	frames := buf.Frames()
	blockAlign := channels * 2 // 16-bit samples
	dataSize := uint32(frames * blockAlign)
	byteRate := uint32(buf.SampleRate() * blockAlign)

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(headerSize)+dataSize-8)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // integer PCM
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.SampleRate()))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], 16) // bits per sample

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if frames == 0 {
		return nil
	}

	// Quantize and interleave in chunks to keep large clips from allocating
	// one giant byte slice.
	const chunkFrames = 4096
	out := make([]byte, min(frames, chunkFrames)*blockAlign)

	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)
		n := 0
		for f := start; f < end; f++ {
			for ch := 0; ch < channels; ch++ {
				v := utils.SampleToInt16(buf.Sample(ch, f))
				binary.LittleEndian.PutUint16(out[n:n+2], uint16(v))
				n += 2
			}
		}
		if _, err := w.Write(out[:n]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Bytes encodes buf and returns the complete container as a byte slice.
func Bytes(buf *audio.Buffer) []byte {
	var b bytes.Buffer
	b.Grow(headerSize + buf.Frames()*buf.Channels()*2)
	// bytes.Buffer writes never fail
	_ = Encode(&b, buf)
	return b.Bytes()
}
