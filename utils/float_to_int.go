// SPDX-License-Identifier: EPL-2.0

package utils

// SampleToInt16 clamps a sample to [-1, 1] and quantizes it to signed 16-bit
// PCM using symmetric scaling: negative values scale by 32768, non-negative
// values by 32767, so the full quantized range stays representable without
// overflow.
func SampleToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}
