// SPDX-License-Identifier: EPL-2.0

package edit

import "errors"

var (
	ErrEmptyRegion          = errors.New("crop region resolves to zero frames")
	ErrInvalidBuffer        = errors.New("source buffer has no channels or no valid sample rate")
	ErrInvalidCropRange     = errors.New("crop range must satisfy 0 <= start < end <= duration")
	ErrNegativeVolume       = errors.New("volume must not be negative")
	ErrNegativeFadeDuration = errors.New("fade duration must not be negative")
)
