// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sampletext/formats/raw"
	"github.com/ik5/sampletext/sample"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always produces interleaved stereo
const channels = 2

// source reuses the raw word reader: go-mp3 output is 16-bit little-endian PCM.
type source struct {
	sample.Source
	sampleRate int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }

func newSource(dec mp3Reader) (*source, error) {
	words, err := raw.Decoder{}.Decode(dec)
	if err != nil {
		return nil, fmt.Errorf("wrapping mp3 stream: %w", err)
	}

	return &source{Source: words, sampleRate: dec.SampleRate()}, nil
}

// Decoder reads MPEG-1/2 audio layer III input.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (sample.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return newSource(dec)
}
