// SPDX-License-Identifier: EPL-2.0

package export

import (
	"context"
	"fmt"
	"time"

	"github.com/ik5/audedit/audio"
)

// Encoder is the host-provided realtime encoder the adapter drives. The
// bitstream itself is entirely the encoder's business; the adapter only
// negotiates the container, feeds samples and guarantees finalization.
type Encoder interface {
	// Supports reports whether the encoder can produce the given MIME type.
	Supports(mimeType string) bool
	// Start begins an encode session for the given MIME type.
	Start(mimeType string) error
	// Write feeds interleaved float32 samples. A live encoder consumes them
	// at playback rate, so Write may block for the clip duration.
	Write(samples []float32) error
	// Done is closed when the encoder observes end of stream on its own.
	Done() <-chan struct{}
	// Stop force-finalizes the session and returns all bytes buffered so far.
	// It must be safe to call whether or not Done has fired.
	Stop() ([]byte, error)
}

// Result is the outcome of one export: the encoded bytes and the container
// tag that was negotiated. TimedOut marks an export that was force-finalized
// by the safety timeout instead of the encoder's own end-of-stream signal;
// the data is still the best-effort output, not an error.
type Result struct {
	Data      []byte
	Container string // "mp4", "ogg" or "webm"
	TimedOut  bool
}

// candidate pairs a MIME type to probe with the container tag it reports.
type candidate struct {
	mimeType  string
	container string
}

// Fixed preference order. Opus in an mp4-family container first, then Ogg,
// then WebM, with plain WebM as the generic last resort.
var preferences = []candidate{
	{"audio/mp4;codecs=opus", "mp4"},
	{"audio/ogg;codecs=opus", "ogg"},
	{"audio/webm;codecs=opus", "webm"},
	{"audio/webm", "webm"},
}

// finalizeGrace is added to the clip duration for the safety timeout.
// End-of-stream signals from live encoders are not guaranteed to fire.
const finalizeGrace = time.Second

// Export encodes a rendered buffer through the host encoder and returns the
// collected bytes with the negotiated container tag.
//
// The first MIME type from the preference list the encoder supports wins;
// if none is supported, Export fails with ErrUnsupportedContainer. The
// encode finishes when the encoder signals end of stream, when the safety
// timeout of buffer duration + 1s fires, or when ctx is cancelled. In the
// latter two cases the session is force-finalized and the buffered bytes are
// returned anyway: a timeout is reported via Result.TimedOut, a cancellation
// via ctx's error alongside the partial result.
func Export(ctx context.Context, enc Encoder, buf *audio.Buffer) (Result, error) {
	mimeType, container, ok := negotiate(enc)
	if !ok {
		return Result{}, ErrUnsupportedContainer
	}
	result := Result{Container: container}

	if err := enc.Start(mimeType); err != nil {
		return result, fmt.Errorf("starting encoder: %w", err)
	}

	// Feed the clip from a separate goroutine; a live encoder consumes it at
	// playback rate, and the adapter must keep watching the clock meanwhile.
	writeErr := make(chan error, 1)
	go func() {
		writeErr <- enc.Write(buf.Interleaved())
	}()

	timer := time.NewTimer(time.Duration(buf.Duration()*float64(time.Second)) + finalizeGrace)
	defer timer.Stop()

	var cause error
	for {
		select {
		case err := <-writeErr:
			if err == nil {
				// Writing finished; keep waiting for end of stream.
				writeErr = nil
				continue
			}
			cause = fmt.Errorf("writing samples: %w", err)
		case <-enc.Done():
		case <-timer.C:
			result.TimedOut = true
		case <-ctx.Done():
			cause = ctx.Err()
		}
		break
	}

	data, err := enc.Stop()
	if err != nil {
		return result, fmt.Errorf("finalizing encode: %w", err)
	}
	result.Data = data

	return result, cause
}

// negotiate probes the preference list and returns the first supported MIME
// type with its container tag.
func negotiate(enc Encoder) (mimeType, container string, ok bool) {
	for _, c := range preferences {
		if enc.Supports(c.mimeType) {
			return c.mimeType, c.container, true
		}
	}
	return "", "", false
}
