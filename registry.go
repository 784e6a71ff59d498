// SPDX-License-Identifier: EPL-2.0

package sampletext

import (
	"github.com/ik5/sampletext/formats/aiff"
	"github.com/ik5/sampletext/formats/mp3"
	"github.com/ik5/sampletext/formats/raw"
	"github.com/ik5/sampletext/formats/vorbis"
	"github.com/ik5/sampletext/formats/wav"
	"github.com/ik5/sampletext/powerstrip"
	"github.com/ik5/sampletext/sample"
)

// FormatRaw is the registry key of the headerless word format and the
// fallback for unrecognised extensions.
const FormatRaw = "raw"

// FormatPowerstrip is the registry key of compressed word streams.
const FormatPowerstrip = "pstrip"

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *sample.Registry {
	r := sample.NewRegistry()

	for _, ext := range []string{FormatRaw, "bin", "pcm"} {
		r.Register(ext, raw.Decoder{})
	}
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register(FormatPowerstrip, powerstrip.Decoder{})

	r.SetFallback(FormatRaw)

	return r
}
