// SPDX-License-Identifier: EPL-2.0

// Package powerstrip losslessly compresses streams of 16-bit words, such as
// sensor captures that idle at a baseline value.
//
// The input is cut into blocks (DefaultBlockWords by default). Each block is
// compressed on its own:
//
//  1. The floor is the most common word when it covers at least 10% of the
//     block, 0 otherwise. Runs of words that differ from the floor are kept
//     as (index, length) segments; everything else is implied.
//  2. The kept words are delta coded against the previous kept word, zigzag
//     mapped and bit packed at the width that minimises the output. Deltas
//     too wide for that width are replaced by an all-ones marker and stored
//     in a separate 17-bit outlier stream.
//  3. The block body is zstd compressed when that makes it smaller.
//
// # Stream Layout
//
// A stream is a sequence of frames, all integers little-endian:
//
//	uint64  frame length (method byte + payload)
//	uint8   method: 0 plain, 1 zstd
//	[]byte  block body
//
// A block body holds the packed deltas, then the outliers, then the strip
// table:
//
//	uint32 count, uint8 width, uint32 size, size bytes   (deltas)
//	uint32 count, uint8 17,    uint32 size, size bytes   (outliers)
//	uint32 total, uint16 floor, uint32 segments
//	segments x uint32 index, segments x uint32 length
//
// An empty input compresses to an empty stream.
//
// # Usage
//
//	st, err := powerstrip.Compress(src, out, powerstrip.Options{})
//	n, err := powerstrip.Decompress(in, out)
//
// Reader and Decoder expose a compressed stream as a sample.Source, so it can
// feed codec.Decode directly.
package powerstrip
