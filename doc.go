// SPDX-License-Identifier: EPL-2.0

// Package sampletext converts between binary 16-bit sample streams and text.
//
// Decoding turns each little-endian 16-bit word of the input into one decimal
// line (0 to 65535). Encoding parses one base-10 integer per line, subtracts
// an offset and writes the result as signed 16-bit little-endian samples,
// 1024 lines per write by default.
//
// # Quick Start
//
//	conv := sampletext.Converter{}
//
//	// binary -> text
//	n, err := conv.DecodeFile("capture.bin", "capture.txt", sampletext.DecodeFileOptions{})
//
//	// text -> binary
//	res, err := conv.EncodeFile("capture.txt", "capture.bin", sampletext.EncodeFileOptions{})
//
// # Input Formats
//
// DecodeFile reads its input as raw words whatever the file is called. A
// container decoder is only used when asked for, either by key with
// DecodeFileOptions.Format or by extension with DecodeFileOptions.Detect:
//   - raw words (bin, raw, pcm, and any unknown extension) via formats/raw
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (PCM 16-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - compressed word streams (pstrip) via powerstrip
//
// Container formats are reduced to their interleaved 16-bit words, so a WAV
// file decodes to the same lines as its raw PCM payload.
//
// # Compression
//
// CompressFile packs raw words into a powerstrip stream and DecompressFile
// restores them, as words or as decimal lines.
//
// # Output Containers
//
// EncodeFile writes raw samples by default. ContainerWAV wraps the same
// samples in a mono 16-bit WAV file at EncodeFileOptions.SampleRate.
//
// The lower level building blocks live in the codec package, which works on
// any io.Reader, io.Writer, sample.Source and sample.Sink.
package sampletext
