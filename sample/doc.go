// SPDX-License-Identifier: EPL-2.0

// Package sample defines the stream abstractions shared by the codec and the
// format packages.
//
// A Source yields 16-bit sample words in their original order. For signed PCM
// containers the word is the two's complement bit pattern of the sample, so a
// value of -1 is reported as 65535. A Sink accepts signed 16-bit samples and
// writes them through as they arrive.
//
// # Registry
//
// Decoders are registered by format key and resolved by file extension:
//
//	reg := sample.NewRegistry()
//	reg.Register("raw", raw.Decoder{})
//	reg.Register("wav", wav.Decoder{})
//	reg.SetFallback("raw")
//
//	dec, format, err := reg.Lookup("capture.bin") // raw via fallback
//
// Lookup fails with ErrUnknownFormat only when neither the extension nor the
// fallback is registered.
package sample
