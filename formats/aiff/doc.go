// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Decoding AIFF Files
//
//	source, err := aiff.Decoder{}.Decode(file)
//	buf := make([]uint16, 8192)
//	n, err := source.ReadSamples(buf)
//
// AIFF stores big-endian PCM; the decoder hands out the same 16-bit words a
// little-endian raw stream of those samples would hold, in interleaved channel
// order. Only 16-bit PCM is accepted.
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is currently supported
//   - ErrUnsupportedAiffLayout: The COMM chunk carries no channels
package aiff
