// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core in-memory audio types for the edit
// pipeline.
//
// # Buffer
//
// The Buffer type holds a fully decoded clip: a sample rate, a channel count
// and one float32 sample slice per channel. It is the unit every processing
// stage consumes and produces:
//
//	buf, _ := audio.NewBuffer(44100, 2, 44100) // 1 second of stereo silence
//	fmt.Println(buf.Duration())                // 1
//
// Buffers are treated as immutable: functions in this module never write to a
// buffer they receive, and every transformation allocates a fresh output. The
// Channel accessor hands out backing storage for efficient read paths, so
// callers must not write through it.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Intermediate processing (volume above 1.0, for example) may push values
// outside this range; clamping happens once, at encode time.
//
// # Decoder Registry
//
// The Registry maps format names to decoders so applications can pick a
// decoder by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//	buf, err := decoder.Decode(file)
//
// # Conversions
//
// Resample converts a buffer to a different sample rate with cubic
// interpolation, and DownmixMono averages all channels into one. Both exist
// for export-time convenience; the edit pipeline itself preserves rate and
// channel count exactly.
package audio
