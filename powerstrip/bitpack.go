// SPDX-License-Identifier: EPL-2.0

package powerstrip

func mask(width uint8) uint32 { return uint32(1)<<width - 1 }

// packedLen is the byte size of count values of width bits.
func packedLen(count int, width uint8) int {
	return (count*int(width) + 7) / 8
}

// packBits appends the low width bits of every value, least significant bit first.
func packBits(dst []byte, values []uint32, width uint8) []byte {
	m := mask(width)

	var acc uint64
	var n uint
	for _, v := range values {
		acc |= uint64(v&m) << n
		n += uint(width)
		for n >= 8 {
			dst = append(dst, byte(acc))
			acc >>= 8
			n -= 8
		}
	}
	if n > 0 {
		dst = append(dst, byte(acc))
	}

	return dst
}

// unpackBits reverses packBits. src must hold exactly packedLen(count, width) bytes.
func unpackBits(dst []uint32, src []byte, count int, width uint8) ([]uint32, error) {
	if len(src) != packedLen(count, width) {
		return dst, ErrCorrupt
	}

	m := mask(width)

	var acc uint64
	var n uint
	pos := 0
	for range count {
		for n < uint(width) {
			acc |= uint64(src[pos]) << n
			pos++
			n += 8
		}
		dst = append(dst, uint32(acc)&m)
		acc >>= width
		n -= uint(width)
	}

	return dst, nil
}
