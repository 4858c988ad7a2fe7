// SPDX-License-Identifier: EPL-2.0

// Package export hands a rendered clip to an external realtime encoder and
// collects the compressed result.
//
// The lossy bitstream itself is out of this module's hands: the host
// supplies an Encoder (typically wrapping a platform media encoder) and the
// adapter's job is the part that is easy to get wrong around it:
//
//   - container negotiation, by probing a fixed preference list
//     (mp4-family with Opus, then Ogg, then WebM, then plain WebM)
//   - the safety timeout of clip duration + 1 second, because a live
//     encoder's end-of-stream signal is not guaranteed to fire
//   - forced finalization on timeout or cancellation, so the caller always
//     gets the buffered bytes back instead of hanging
//
// Usage:
//
//	res, err := export.Export(ctx, hostEncoder, rendered)
//	if errors.Is(err, export.ErrUnsupportedContainer) {
//	    // fall back to lossless WAV export
//	}
//	save(res.Data, res.Container)
//
// There are no retries: an export is a single attempt and every failure
// beyond the recovered timeout propagates to the caller.
package export
