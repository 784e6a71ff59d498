// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ik5/sampletext/sample"
)

// EncodeResult summarises an encode run.
type EncodeResult struct {
	Lines   int64 // input lines consumed
	Samples int64 // samples written to the sink
	Skipped int64 // blank lines skipped
	Chunks  int64 // WriteSamples calls made
	Offset  int64 // offset subtracted from every value
}

// ChunkFunc observes each chunk after it was written.
type ChunkFunc func(index int64, samples int)

// Encode parses r as one base-10 integer per line, subtracts opts.Offset and
// writes the narrowed values to sink, one WriteSamples call per chunk of lines.
// With OffsetMinimum, resolve the offset first with ResolveOffset.
//
// Chunks written before a failing line stay written. sink is not closed.
func Encode(r io.Reader, sink sample.Sink, opts EncodeOptions) (EncodeResult, error) {
	return EncodeChunks(r, sink, opts, nil)
}

// EncodeChunks is Encode with a callback invoked after every written chunk.
func EncodeChunks(r io.Reader, sink sample.Sink, opts EncodeOptions, fn ChunkFunc) (EncodeResult, error) {
	res := EncodeResult{Offset: opts.Offset}

	size, err := opts.chunkSize()
	if err != nil {
		return res, err
	}

	chunks := newChunker(r, size)
	buf := make([]int16, 0, size)

	for chunks.Next() {
		buf = buf[:0]
		for i, text := range chunks.Lines() {
			res.Lines++

			v, ok, err := parseLine(text, opts.BlankLines)
			if err != nil {
				return res, &LineError{Line: chunks.LineNumber(i), Text: text, Err: err}
			}
			if !ok {
				res.Skipped++
				continue
			}

			s, err := Narrow(v, opts.Offset, opts.Narrowing)
			if err != nil {
				return res, &LineError{Line: chunks.LineNumber(i), Text: text, Err: err}
			}
			buf = append(buf, s)
		}

		if len(buf) == 0 {
			continue
		}
		if err := sink.WriteSamples(buf); err != nil {
			return res, fmt.Errorf("writing chunk %d: %w", res.Chunks, err)
		}
		if fn != nil {
			fn(res.Chunks, len(buf))
		}
		res.Chunks++
		res.Samples += int64(len(buf))
	}

	if err := chunks.Err(); err != nil {
		return res, err
	}

	return res, nil
}

// parseLine returns ok == false for a blank line skipped under BlankSkip.
func parseLine(text string, blanks BlankLines) (int64, bool, error) {
	field := strings.TrimSpace(text)
	if field == "" {
		switch blanks {
		case BlankSkip:
			return 0, false, nil
		case BlankFail:
			return 0, false, ErrBlankLine
		}

		return 0, false, fmt.Errorf("%w: blank lines %d", ErrUnknownOption, int(blanks))
	}

	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, fmt.Errorf("%w: %s", ErrOutOfRange, field)
		}

		return 0, false, ErrNotNumber
	}

	return v, true, nil
}
