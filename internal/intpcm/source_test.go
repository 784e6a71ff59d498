// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader simulates the go-audio decoders for testing
type mockReader struct {
	samples  []int
	offset   int
	err      error
	eofEarly bool // return io.EOF together with the last samples
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 8000, NumChannels: 1}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	if m.eofEarly && m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func readAll(t *testing.T, s *Source, bufSize int) []uint16 {
	t.Helper()

	var out []uint16
	buf := make([]uint16, bufSize)
	for {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestSource_SignedToWord(t *testing.T) {
	t.Parallel()

	for _, eofEarly := range []bool{false, true} {
		s := NewSource(&mockReader{samples: []int{-32768, -1, 0, 32767}, eofEarly: eofEarly}, "test", 8000, 1)

		got := readAll(t, s, 3)
		want := []uint16{32768, 65535, 0, 32767}
		if len(got) != len(want) {
			t.Fatalf("eofEarly=%v: read %d words, want %d", eofEarly, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("eofEarly=%v: word[%d] = %d, want %d", eofEarly, i, got[i], want[i])
			}
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := NewSource(&mockReader{}, "test", 44100, 2)
	if s.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	s := NewSource(&mockReader{samples: []int{1}}, "test", 8000, 1)
	n, err := s.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	s := NewSource(&mockReader{err: io.ErrUnexpectedEOF}, "test", 8000, 1)
	_, err := s.ReadSamples(make([]uint16, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_EOFIsSticky(t *testing.T) {
	t.Parallel()

	s := NewSource(&mockReader{samples: []int{1}}, "test", 8000, 1)
	buf := make([]uint16, 4)

	_ = readAll(t, s, 4)
	for range 3 {
		if n, err := s.ReadSamples(buf); n != 0 || err != io.EOF {
			t.Fatalf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
		}
	}
}

func TestSource_GrowsBuffer(t *testing.T) {
	t.Parallel()

	samples := make([]int, 100)
	for i := range samples {
		samples[i] = i
	}
	s := NewSource(&mockReader{samples: samples}, "test", 8000, 1)

	small := make([]uint16, 2)
	if n, _ := s.ReadSamples(small); n != 2 {
		t.Fatalf("first read n = %d, want 2", n)
	}

	big := make([]uint16, 50)
	n, _ := s.ReadSamples(big)
	if n != 50 || big[0] != 2 || big[49] != 51 {
		t.Errorf("second read = %d words starting %d ending %d; want 50 words 2..51", n, big[0], big[49])
	}
}
