// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrNoChannels         = errors.New("buffer must have at least one channel")
	ErrNegativeFrameCount = errors.New("frame count must not be negative")
	ErrChannelLength      = errors.New("all channels must have the same length")
	ErrInterleaveSize     = errors.New("interleaved data size must be a multiple of channel count")
)
