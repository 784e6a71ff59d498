// SPDX-License-Identifier: EPL-2.0

package powerstrip

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// outlierBits holds any zigzagged delta between two 16-bit words.
const outlierBits = 17

// stripped records where the block differs from its floor value.
type stripped struct {
	total   uint32
	floor   uint16
	indices []uint32
	lengths []uint32
}

// chooseFloor returns the most common word when it covers at least a tenth of
// the block, 0 otherwise. Ties go to the smaller word.
func chooseFloor(words []uint16) uint16 {
	if len(words) == 0 {
		return 0
	}

	hist := make([]uint32, math.MaxUint16+1)
	var floor uint16
	var best uint32
	for _, w := range words {
		hist[w]++
		if c := hist[w]; c > best || (c == best && w < floor) {
			floor, best = w, c
		}
	}

	if 10*uint64(best) < uint64(len(words)) {
		return 0
	}

	return floor
}

// strip splits words into runs of active (non-floor) words and appends the
// active words to actives.
func strip(words []uint16, floor uint16, actives []uint16) (stripped, []uint16) {
	s := stripped{total: uint32(len(words)), floor: floor}

	inSegment := false
	for i, w := range words {
		if w == floor {
			inSegment = false
			continue
		}
		if !inSegment {
			s.indices = append(s.indices, uint32(i))
			s.lengths = append(s.lengths, 0)
			inSegment = true
		}
		s.lengths[len(s.lengths)-1]++
		actives = append(actives, w)
	}

	return s, actives
}

func zigzag(x int32) uint32 { return uint32((x << 1) ^ (x >> 31)) }

func unzigzag(z uint32) int32 { return int32(z>>1) ^ -int32(z&1) }

// bestWidth picks the inline width minimising the packed size, counting every
// outlier as a marker slot plus outlierBits.
func bestWidth(zs []uint32) uint8 {
	var counts [outlierBits + 1]int
	for _, z := range zs {
		// inline values must stay below the all-ones marker
		counts[bits.Len32(z+1)]++
	}

	best := uint8(outlierBits)
	bestSize := math.MaxInt
	inline := 0
	for w := 1; w <= outlierBits; w++ {
		inline += counts[w]
		size := w*len(zs) + outlierBits*(len(zs)-inline)
		if size < bestSize {
			best, bestSize = uint8(w), size
		}
	}

	return best
}

// appendBlock compresses words into dst: the packed deltas, the outliers and
// the strip table, all little-endian.
func appendBlock(dst []byte, words []uint16) []byte {
	s, actives := strip(words, chooseFloor(words), make([]uint16, 0, len(words)))

	zs := make([]uint32, len(actives))
	var prev int32
	for i, w := range actives {
		zs[i] = zigzag(int32(w) - prev)
		prev = int32(w)
	}

	width := bestWidth(zs)
	marker := mask(width)

	var outliers []uint32
	for i, z := range zs {
		if z >= marker {
			outliers = append(outliers, z)
			zs[i] = marker
		}
	}

	dst = appendPacked(dst, zs, width)
	dst = appendPacked(dst, outliers, outlierBits)

	dst = binary.LittleEndian.AppendUint32(dst, s.total)
	dst = binary.LittleEndian.AppendUint16(dst, s.floor)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(s.indices)))
	for _, idx := range s.indices {
		dst = binary.LittleEndian.AppendUint32(dst, idx)
	}
	for _, l := range s.lengths {
		dst = binary.LittleEndian.AppendUint32(dst, l)
	}

	return dst
}

func appendPacked(dst []byte, values []uint32, width uint8) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(values)))
	dst = append(dst, width)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(packedLen(len(values), width)))

	return packBits(dst, values, width)
}

// cursor reads little-endian fields and remembers the first overrun.
type cursor struct {
	buf []byte
	bad bool
}

func (c *cursor) take(n int) []byte {
	if c.bad || n < 0 || n > len(c.buf) {
		c.bad = true
		return nil
	}

	b := c.buf[:n]
	c.buf = c.buf[n:]

	return b
}

func (c *cursor) u8() uint8 {
	if b := c.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (c *cursor) u16() uint16 {
	if b := c.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (c *cursor) u32() uint32 {
	if b := c.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (c *cursor) packed() ([]uint32, uint8, error) {
	count := c.u32()
	width := c.u8()
	size := c.u32()
	if c.bad || width < 1 || width > outlierBits || uint64(count) > MaxBlockWords ||
		uint64(size) != uint64(packedLen(int(count), width)) {
		return nil, 0, ErrCorrupt
	}

	data := c.take(int(size))
	if c.bad {
		return nil, 0, ErrCorrupt
	}

	values, err := unpackBits(make([]uint32, 0, count), data, int(count), width)

	return values, width, err
}

// decodeBlock appends the words of one block body to dst.
func decodeBlock(dst []uint16, body []byte) ([]uint16, error) {
	c := cursor{buf: body}

	zs, width, err := c.packed()
	if err != nil {
		return dst, err
	}
	outliers, outWidth, err := c.packed()
	if err != nil {
		return dst, err
	}
	if outWidth != outlierBits {
		return dst, ErrCorrupt
	}

	total := c.u32()
	floor := c.u16()
	segments := c.u32()
	if c.bad || uint64(total) > MaxBlockWords || uint64(segments)*8 != uint64(len(c.buf)) {
		return dst, ErrCorrupt
	}
	indices := make([]uint32, segments)
	for i := range indices {
		indices[i] = c.u32()
	}
	lengths := make([]uint32, segments)
	for i := range lengths {
		lengths[i] = c.u32()
	}

	actives := make([]uint16, len(zs))
	marker := mask(width)
	next := 0
	var prev int32
	for i, z := range zs {
		if z == marker {
			if next == len(outliers) {
				return dst, ErrCorrupt
			}
			z = outliers[next]
			next++
		}

		v := prev + unzigzag(z)
		if v < 0 || v > math.MaxUint16 {
			return dst, ErrCorrupt
		}
		actives[i] = uint16(v)
		prev = v
	}
	if next != len(outliers) {
		return dst, ErrCorrupt
	}

	start := len(dst)
	for range total {
		dst = append(dst, floor)
	}
	out := dst[start:]

	used := uint64(0)
	for i, idx := range indices {
		l := uint64(lengths[i])
		if uint64(idx)+l > uint64(total) || used+l > uint64(len(actives)) {
			return dst[:start], ErrCorrupt
		}
		copy(out[idx:uint64(idx)+l], actives[used:used+l])
		used += l
	}
	if used != uint64(len(actives)) {
		return dst[:start], ErrCorrupt
	}

	return dst, nil
}
