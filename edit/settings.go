// SPDX-License-Identifier: EPL-2.0

package edit

import "github.com/ik5/audedit/envelope"

// Fade configures one fade stage of an edit.
type Fade struct {
	Enabled  bool
	Duration float64 // seconds
	Curve    envelope.Curve
}

// Settings declaratively describes one edit of a loaded clip: the crop
// region, the static volume and the two optional fades. It is a plain
// parameter object with no tie to any particular buffer; the same settings
// can be re-evaluated against whichever buffer is current.
type Settings struct {
	CropStart float64 // seconds, inclusive
	CropEnd   float64 // seconds, exclusive
	Volume    float64 // static gain multiplier, >= 0
	FadeIn    Fade
	FadeOut   Fade
}

// DefaultSettings returns the settings for a freshly loaded source: a
// full-length crop, unity volume and both fades disabled. The default fade
// duration is min(1s, 10% of the source duration), so short clips get
// proportionally short fades.
func DefaultSettings(sourceDuration float64) Settings {
	fadeDur := sourceDuration * 0.1
	if fadeDur > 1 {
		fadeDur = 1
	}

	fade := Fade{Enabled: false, Duration: fadeDur, Curve: envelope.Linear}

	return Settings{
		CropStart: 0,
		CropEnd:   sourceDuration,
		Volume:    1,
		FadeIn:    fade,
		FadeOut:   fade,
	}
}

// Validate checks the settings against a source duration in seconds.
func (s Settings) Validate(sourceDuration float64) error {
	if s.CropStart < 0 || s.CropStart >= s.CropEnd || s.CropEnd > sourceDuration {
		return ErrInvalidCropRange
	}
	if s.Volume < 0 {
		return ErrNegativeVolume
	}
	if s.FadeIn.Duration < 0 || s.FadeOut.Duration < 0 {
		return ErrNegativeFadeDuration
	}
	return nil
}
