// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces a clip to a compact display summary.
//
// Extract splits the first channel into a fixed number of buckets and keeps
// the minimum and maximum sample of each, which is all a waveform view needs
// to draw the familiar mirrored outline:
//
//	peaks := waveform.Extract(buf, 800) // one bucket per display column
//	for i := range peaks.Positive {
//	    drawColumn(i, peaks.Negative[i], peaks.Positive[i])
//	}
//
// Extraction is read-only, runs in linear time, and never fails: degenerate
// bucket counts produce sentinel values instead of errors so a view can stay
// robust against any requested resolution.
package waveform
