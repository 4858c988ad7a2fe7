// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF streams into audio.Buffer values.
//
// Decoding uses github.com/go-audio/aiff and accepts integer PCM at 8, 16,
// 24 or 32 bits:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("clip.aiff")
//	buf, err := decoder.Decode(file)
//
// AIFF input is big-endian on the wire; go-audio handles the byte order and
// this package only normalizes the integer samples to float32 in [-1, 1].
package aiff
