// SPDX-License-Identifier: EPL-2.0

// Package raw reads and writes headerless streams of 16-bit samples.
//
// The stream is a plain concatenation of 2-byte little-endian words: no header,
// no length prefix and no framing. Its length is implied by the input size.
//
// # Decoding
//
//	src, _ := raw.Decoder{}.Decode(file)
//	buf := make([]uint16, 8192)
//	n, err := src.ReadSamples(buf)
//
// Words are reported unsigned. When the input length is odd the final unpaired
// byte is dropped without an error, so 2n+1 bytes yield exactly n samples.
//
// # Writing
//
//	w := raw.NewWriter(file)
//	err := w.WriteSamples([]int16{1, 2, -1}) // 01 00 02 00 ff ff
//
// Each call writes its samples through in one Write. Concatenating the output of
// any sequence of calls gives the same bytes as one call with all samples.
package raw
