// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files as sample streams.
//
// It uses the github.com/go-audio library for WAV file handling.
//
// # Decoding WAV Files
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]uint16, 8192)
//	n, err := source.ReadSamples(buf)
//
// Samples are reported as 16-bit words in interleaved channel order: the two's
// complement bit pattern of each signed PCM value, so -1 reads as 65535.
// Inputs that are not an io.ReadSeeker are buffered in memory first.
//
// # Writing WAV Files
//
// Writer is a sample.Sink producing mono 16-bit PCM:
//
//	w, err := wav.NewWriter(file, 8000)
//	err = w.WriteSamples(samples)
//	err = w.Close() // patches the header sizes
//
// # Error Handling
//
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: The format chunk carries no channels
//   - ErrInvalidSampleRate: NewWriter got a non-positive rate
package wav
