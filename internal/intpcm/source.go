// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio integer PCM decoders to sample.Source.
package intpcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sampletext/utils"
)

// Reader is the part of the go-audio wav and aiff decoders a Source uses.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads 16-bit integer PCM from a Reader as sample words.
type Source struct {
	dec        Reader
	kind       string
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
	eof        bool
}

// NewSource wraps dec; kind names the container in error messages.
func NewSource(dec Reader, kind string, sampleRate, channels int) *Source {
	return &Source{
		dec:        dec,
		kind:       kind,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []uint16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: 16,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		s.eof = true
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("reading %s samples: %w", s.kind, err)
		}
		return 0, io.EOF
	}

	// go-audio hands out signed values; keep their 16-bit pattern
	for i := range n {
		dst[i] = utils.WordOf(int16(s.intBuf.Data[i]))
	}

	if err == io.EOF {
		s.eof = true
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("reading %s samples: %w", s.kind, err)
	}

	return n, nil
}
