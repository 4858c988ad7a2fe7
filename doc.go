// SPDX-License-Identifier: EPL-2.0

// Package audedit provides offline audio clip editing for Go applications.
//
// This module takes a decoded clip and an edit description — crop range,
// volume, fade-in and fade-out with selectable easing curves — and renders a
// new clip from it, ready for lossless WAV export, lossy export through a
// host encoder, or waveform display.
//
// # Quick Start
//
// The simplest path is decoding a file, adjusting settings and exporting:
//
//	// Decode an audio file
//	decoder := wav.Decoder{}
//	file, _ := os.Open("recording.wav")
//	buf, _ := decoder.Decode(file)
//
//	// Keep seconds 2..10, fade the first second in
//	s := edit.DefaultSettings(buf.Duration())
//	s.CropStart, s.CropEnd = 2, 10
//	s.FadeIn = edit.Fade{Enabled: true, Duration: 1, Curve: envelope.SCurve}
//
//	// Render and export in one call
//	out, _ := os.Create("trimmed.wav")
//	audedit.TrimToWAV(buf, s, out)
//
// # Pipeline
//
// The stages compose as plain functions over audio.Buffer values:
//
//	decoded buffer -> edit.Render -> {wav.Encode | export.Export}
//	                              -> waveform.Extract (for display)
//
// Every stage allocates its output and leaves its input untouched, so
// buffers can be shared freely; there is no shared mutable state anywhere in
// the pipeline and no locking to get right.
//
// # Format Decoders
//
// Each supported format has its own decoder package:
//
//	// WAV
//	buf, _ := wav.Decoder{}.Decode(reader)
//
//	// MP3
//	buf, _ := mp3.Decoder{}.Decode(reader)
//
//	// Ogg Vorbis
//	buf, _ := vorbis.Decoder{}.Decode(reader)
//
//	// AIFF
//	buf, _ := aiff.Decoder{}.Decode(reader)
//
// DefaultRegistry bundles all four, keyed by file extension.
//
// # Display
//
// The waveform package reduces a clip to per-bucket (min, max) peaks for
// drawing, and works on either the original or the rendered buffer.
//
// See the individual subpackages for more detailed documentation.
package audedit
