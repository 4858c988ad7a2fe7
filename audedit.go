// SPDX-License-Identifier: EPL-2.0

package audedit

import (
	"fmt"
	"io"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/edit"
	"github.com/ik5/audedit/formats/aiff"
	"github.com/ik5/audedit/formats/mp3"
	"github.com/ik5/audedit/formats/vorbis"
	"github.com/ik5/audedit/formats/wav"
)

// DefaultRegistry returns a decoder registry with every format this module
// ships, keyed by the usual file extensions: "wav", "mp3", "ogg", "aiff".
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// TrimToWAV is a high-level convenience function that renders an edit of src
// and writes the result as a 16-bit PCM WAV file in one call.
//
// This function runs the full pipeline:
//  1. Cuts the crop region defined by the settings out of the source
//  2. Applies the static volume and the fade envelopes
//  3. Quantizes the rendered samples to interleaved 16-bit PCM
//  4. Writes the canonical WAV container to w
//
// For more control over the individual stages, or for lossy export, use
// edit.Render with formats/wav or the export package directly.
//
// Example:
//
//	buf, _ := wav.Decoder{}.Decode(file)
//	s := edit.DefaultSettings(buf.Duration())
//	s.CropStart, s.CropEnd = 2, 10
//	err := audedit.TrimToWAV(buf, s, out)
func TrimToWAV(src *audio.Buffer, s edit.Settings, w io.Writer) error {
	rendered, err := edit.Render(src, s)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.Encode(w, rendered); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
