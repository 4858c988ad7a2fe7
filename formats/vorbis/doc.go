// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio.Buffer values.
//
// Decoding uses github.com/jfreymuth/oggvorbis, which delivers interleaved
// float32 samples directly, so no integer normalization step is needed:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("clip.ogg")
//	buf, err := decoder.Decode(file)
//
// The channel count and sample rate of the stream are preserved as-is.
package vorbis
