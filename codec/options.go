// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"strings"
)

const (
	// DefaultBufferSize is the number of samples read per decode iteration (16 KiB).
	DefaultBufferSize = 8192
	// DefaultChunkSize is the number of text lines grouped per encoded write.
	DefaultChunkSize = 1024
)

// OffsetMode selects where the encode offset comes from.
type OffsetMode int

const (
	// OffsetConstant subtracts EncodeOptions.Offset as given.
	OffsetConstant OffsetMode = iota
	// OffsetMinimum derives the offset as min(0, smallest value in the input).
	OffsetMinimum
)

// BlankLines selects how empty or whitespace-only lines are treated.
type BlankLines int

const (
	BlankFail BlankLines = iota
	BlankSkip
)

// Narrowing selects how a value is reduced to 16 bits.
type Narrowing int

const (
	// NarrowStrict rejects values outside [-32768, 32767].
	NarrowStrict Narrowing = iota
	// NarrowWrap keeps the low 16 bits (two's complement wraparound).
	NarrowWrap
)

// DecodeOptions configure Decode.
type DecodeOptions struct {
	BufferSize int // samples per read, DefaultBufferSize when 0
}

// EncodeOptions configure Encode and ResolveOffset.
type EncodeOptions struct {
	Offset     int64
	OffsetMode OffsetMode
	ChunkSize  int // lines per chunk, DefaultChunkSize when 0
	BlankLines BlankLines
	Narrowing  Narrowing
}

func (o DecodeOptions) bufferSize() (int, error) {
	switch {
	case o.BufferSize == 0:
		return DefaultBufferSize, nil
	case o.BufferSize < 0:
		return 0, fmt.Errorf("%w: %d", ErrInvalidBuffer, o.BufferSize)
	}

	return o.BufferSize, nil
}

func (o EncodeOptions) chunkSize() (int, error) {
	switch {
	case o.ChunkSize == 0:
		return DefaultChunkSize, nil
	case o.ChunkSize < 0:
		return 0, fmt.Errorf("%w: %d", ErrInvalidChunkSize, o.ChunkSize)
	}

	return o.ChunkSize, nil
}

func (m OffsetMode) String() string {
	switch m {
	case OffsetConstant:
		return "constant"
	case OffsetMinimum:
		return "minimum"
	}

	return fmt.Sprintf("OffsetMode(%d)", int(m))
}

// ParseOffsetMode accepts "constant" or "minimum".
func ParseOffsetMode(s string) (OffsetMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "constant":
		return OffsetConstant, nil
	case "minimum", "min":
		return OffsetMinimum, nil
	}

	return 0, fmt.Errorf("%w: offset mode %q", ErrUnknownOption, s)
}

func (b BlankLines) String() string {
	switch b {
	case BlankFail:
		return "fail"
	case BlankSkip:
		return "skip"
	}

	return fmt.Sprintf("BlankLines(%d)", int(b))
}

// ParseBlankLines accepts "fail" or "skip".
func ParseBlankLines(s string) (BlankLines, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail":
		return BlankFail, nil
	case "skip":
		return BlankSkip, nil
	}

	return 0, fmt.Errorf("%w: blank line policy %q", ErrUnknownOption, s)
}

func (n Narrowing) String() string {
	switch n {
	case NarrowStrict:
		return "strict"
	case NarrowWrap:
		return "wrap"
	}

	return fmt.Sprintf("Narrowing(%d)", int(n))
}

// ParseNarrowing accepts "strict" or "wrap".
func ParseNarrowing(s string) (Narrowing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return NarrowStrict, nil
	case "wrap":
		return NarrowWrap, nil
	}

	return 0, fmt.Errorf("%w: narrowing %q", ErrUnknownOption, s)
}
