// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToWord scales x from [-1, 1] to signed 16-bit PCM and returns the
// sample's 16-bit pattern. Values outside the range are clamped, NaN maps to 0.
func Float32ToWord(x float32) uint16 {
	switch {
	case math.IsNaN(float64(x)):
		return 0
	case x >= 1:
		return uint16(math.MaxInt16)
	case x <= -1:
		return WordOf(math.MinInt16)
	}

	return WordOf(int16(int32(x * 32768.0)))
}

// WordOf returns the two's complement bit pattern of s.
func WordOf(s int16) uint16 { return uint16(s) }

// SignedOf reinterprets a 16-bit word as a signed sample.
func SignedOf(w uint16) int16 { return int16(w) }
