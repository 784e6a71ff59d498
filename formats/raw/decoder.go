// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sampletext/sample"
)

// WordSize is the width of one sample in bytes.
const WordSize = 2

type source struct {
	r   io.Reader
	buf []byte
	eof bool
}

func (s *source) SampleRate() int { return 0 }
func (s *source) Channels() int   { return 1 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []uint16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	need := len(dst) * WordSize
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// A short read only happens at the end of the stream; an unpaired
		// trailing byte is dropped.
		s.eof = true
	default:
		return 0, fmt.Errorf("reading samples: %w", err)
	}

	samples := n / WordSize
	for i := range samples {
		dst[i] = binary.LittleEndian.Uint16(s.buf[WordSize*i:])
	}

	if s.eof {
		return samples, io.EOF
	}

	return samples, nil
}

// Decoder reads headerless little-endian unsigned 16-bit words.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (sample.Source, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	return &source{r: r}, nil
}
