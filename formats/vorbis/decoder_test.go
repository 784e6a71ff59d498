// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func newTestSource(samples []float32) *source {
	return &source{
		dec:        &mockOggVorbisReader{sampleRate: 48000, channels: 2, samples: samples},
		sampleRate: 48000,
		channels:   2,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := newTestSource(nil)
	if s.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	s := newTestSource([]float32{0, 0.5, -0.5, 1, -1, 2})

	var got []uint16
	buf := make([]uint16, 4)
	for {
		n, err := s.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := []uint16{0, 16384, 49152, 32767, 32768, 32767}
	if len(got) != len(want) {
		t.Fatalf("read %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	n, err := newTestSource([]float32{0.1}).ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	s := &source{dec: &mockOggVorbisReader{channels: 1, err: io.ErrUnexpectedEOF}, channels: 1}
	_, err := s.ReadSamples(make([]uint16, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
