// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"math"
)

// Narrow subtracts offset from v and reduces the result to 16 bits.
func Narrow(v, offset int64, mode Narrowing) (int16, error) {
	d := v - offset
	if (offset > 0 && d > v) || (offset < 0 && d < v) {
		return 0, fmt.Errorf("%w: %d - %d overflows", ErrOutOfRange, v, offset)
	}

	switch mode {
	case NarrowWrap:
		return int16(d), nil
	case NarrowStrict:
		if d < math.MinInt16 || d > math.MaxInt16 {
			return 0, fmt.Errorf("%w: %d", ErrOutOfRange, d)
		}

		return int16(d), nil
	}

	return 0, fmt.Errorf("%w: narrowing %d", ErrUnknownOption, int(mode))
}
