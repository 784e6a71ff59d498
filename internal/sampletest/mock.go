// SPDX-License-Identifier: EPL-2.0

package sampletest

import (
	"errors"
	"io"
)

// ErrInjected is returned by sources and sinks built to fail.
var ErrInjected = errors.New("injected failure")

// MockSource is a test helper that generates sample words for testing.
// It implements the sample.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	total      int // Total words to generate
	generated  int
	failAfter  int // Fail once this many words were produced, -1 disables
	word       func(i int) uint16

	Closed bool
}

// NewMockSource creates a source producing total words, word(i) for the i-th.
func NewMockSource(total int, word func(i int) uint16) *MockSource {
	return &MockSource{
		sampleRate: 0,
		channels:   1,
		total:      total,
		failAfter:  -1,
		word:       word,
	}
}

// NewSliceSource creates a source replaying words.
func NewSliceSource(words []uint16) *MockSource {
	return NewMockSource(len(words), func(i int) uint16 { return words[i] })
}

// NewRampSource creates a source counting up from 0, wrapping at 65535.
func NewRampSource(total int) *MockSource {
	return NewMockSource(total, func(i int) uint16 { return uint16(i) })
}

// FailAfter makes ReadSamples return ErrInjected once n words were produced.
func (m *MockSource) FailAfter(n int) *MockSource {
	m.failAfter = n
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []uint16) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrInjected
	}
	if m.generated >= m.total {
		return 0, io.EOF
	}

	n := min(len(dst), m.total-m.generated)
	if m.failAfter >= 0 {
		n = min(n, m.failAfter-m.generated)
	}

	for i := range n {
		dst[i] = m.word(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.total {
		return n, io.EOF
	}

	return n, nil
}

// Sink records every WriteSamples call.
type Sink struct {
	Calls  [][]int16
	Closed bool

	failOnCall int
}

// NewFailingSink returns a sink that fails the call-th WriteSamples (1-based).
func NewFailingSink(call int) *Sink {
	return &Sink{failOnCall: call}
}

func (s *Sink) WriteSamples(src []int16) error {
	if s.failOnCall > 0 && len(s.Calls)+1 == s.failOnCall {
		return ErrInjected
	}

	s.Calls = append(s.Calls, append([]int16(nil), src...))
	return nil
}

func (s *Sink) Close() error {
	s.Closed = true
	return nil
}

// Samples flattens all recorded calls.
func (s *Sink) Samples() []int16 {
	var out []int16
	for _, c := range s.Calls {
		out = append(out, c...)
	}

	return out
}
