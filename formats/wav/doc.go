// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding into audio.Buffer values and the
// canonical lossless export encoder.
//
// # Decoding
//
// The Decoder reads an entire WAV stream into memory:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("clip.wav")
//	buf, err := decoder.Decode(file)
//
// Decoding uses github.com/go-audio/wav underneath and accepts integer PCM
// at 8, 16, 24 or 32 bits, any channel count and any sample rate. Samples
// are normalized to float32 in [-1.0, 1.0].
//
// # Encoding
//
// Encode writes a buffer as 16-bit integer PCM:
//
//	out, _ := os.Create("export.wav")
//	err := wav.Encode(out, buf)
//
// The output is the canonical 44-byte RIFF/WAVE header followed by the
// channel-interleaved samples. Samples outside [-1, 1] are clamped before
// quantization, and quantization uses symmetric scaling so the full signed
// 16-bit range is reachable without overflow. Bytes returns the same
// container as a byte slice for callers that hand the data to a save dialog
// or network layer instead of a file.
//
// # File Format
//
// WAV files written here consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): integer PCM, channel count, sample rate, 16 bits
//   - data chunk: interleaved little-endian samples
//
// A zero-frame buffer encodes to a valid 44-byte header-only file.
package wav
