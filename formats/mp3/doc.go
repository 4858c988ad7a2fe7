// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Buffer values.
//
// Decoding uses github.com/hajimehoshi/go-mp3, which outputs stereo 16-bit
// PCM regardless of the source encoding:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("clip.mp3")
//	buf, err := decoder.Decode(file)
//
// The whole stream is decoded into memory, matching the edit pipeline's
// input contract: one fully decoded buffer per loaded source. There is no
// MP3 encoder here; lossless export uses formats/wav and lossy export goes
// through the export package's host encoder.
package mp3
