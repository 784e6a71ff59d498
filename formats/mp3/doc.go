// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding into 16-bit sample words.
//
// This package uses github.com/hajimehoshi/go-mp3, which always produces
// interleaved stereo 16-bit little-endian PCM. That output is read with the raw
// word reader, so an MP3 dumps to text exactly like its decoded PCM would.
//
//	source, err := mp3.Decoder{}.Decode(file)
//	buf := make([]uint16, 8192)
//	n, err := source.ReadSamples(buf)
//
// Channels always reports 2; mono files are duplicated into both channels by
// the underlying decoder.
package mp3
