// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sampletext/sample"
	"github.com/ik5/sampletext/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	floatBuf   []float32
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []uint16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if cap(s.floatBuf) < len(dst) {
		s.floatBuf = make([]float32, len(dst))
	}
	s.floatBuf = s.floatBuf[:len(dst)]

	// oggvorbis returns the number of interleaved values decoded
	n, err := s.dec.Read(s.floatBuf)
	for i := range n {
		dst[i] = utils.Float32ToWord(s.floatBuf[i])
	}

	switch {
	case err == io.EOF:
		s.eof = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("reading vorbis samples: %w", err)
	}

	return n, nil
}

// Decoder reads Ogg Vorbis input, scaling decoded samples to 16-bit PCM.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (sample.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening vorbis stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		floatBuf:   make([]float32, 4096),
	}, nil
}
