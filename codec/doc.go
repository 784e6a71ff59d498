// SPDX-License-Identifier: EPL-2.0

// Package codec converts 16-bit sample streams to decimal text and back.
//
// # Decoding
//
// Decode reads a sample.Source in buffers of DecodeOptions.BufferSize words
// (8192 by default) and writes one unsigned decimal value per line:
//
//	src, _ := raw.Decoder{}.Decode(in)        // 01 00 02 00
//	n, err := codec.Decode(src, out, codec.DecodeOptions{})
//	// out now holds "1\n2\n", n == 2
//
// # Encoding
//
// Encode reads text, one base-10 integer per line, and writes signed 16-bit
// samples to a sample.Sink. Lines are grouped into chunks of
// EncodeOptions.ChunkSize (1024 by default) and each chunk is written as soon as
// it is built. The chunk size never changes the bytes produced.
//
//	res, err := codec.Encode(in, raw.NewWriter(out), codec.EncodeOptions{Offset: 2})
//	// "5\n10\n-3\n" is written as 3, 8, -5
//
// Surrounding whitespace on a line is ignored. Every other failure is fatal
// and reported as a *LineError carrying the 1-based line number:
//   - ErrNotNumber: the line is not a base-10 integer
//   - ErrBlankLine: the line is empty and BlankLines is BlankFail
//   - ErrOutOfRange: the value minus the offset does not fit in 16 bits
//
// Chunks written before the failing line remain in the sink.
//
// # Offset
//
// OffsetConstant subtracts EncodeOptions.Offset. OffsetMinimum derives it from
// the input with ResolveOffset, which needs an io.ReadSeeker:
//
//	opts := codec.EncodeOptions{OffsetMode: codec.OffsetMinimum}
//	opts.Offset, err = codec.ResolveOffset(file, opts)
//	res, err := codec.Encode(file, sink, opts)
//
// # Narrowing
//
// NarrowStrict (the default) rejects values outside [-32768, 32767]. NarrowWrap
// keeps the low 16 bits, which turns decode followed by encode into an exact
// byte round-trip even for words above 32767: 40000 decodes to "40000" and is
// encoded back as -25536, the same bit pattern.
package codec
