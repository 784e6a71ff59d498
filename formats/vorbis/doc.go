// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding into 16-bit sample words.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to float32
// values in [-1, 1]; each one is clamped and scaled to signed 16-bit PCM, and
// its bit pattern is reported, interleaved by channel.
//
//	source, err := vorbis.Decoder{}.Decode(file)
//	buf := make([]uint16, 8192)
//	n, err := source.ReadSamples(buf)
package vorbis
