// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"io"
)

// ResolveOffset returns the offset Encode should subtract.
//
// For OffsetConstant it is opts.Offset and rs is untouched. For OffsetMinimum rs
// is scanned once for the smallest value, starting from 0 so inputs that are
// already non-negative keep an offset of 0, and then rewound to the start.
// Blank lines follow opts.BlankLines. A non-zero opts.Offset is rejected in
// OffsetMinimum mode.
func ResolveOffset(rs io.ReadSeeker, opts EncodeOptions) (int64, error) {
	switch opts.OffsetMode {
	case OffsetConstant:
		return opts.Offset, nil
	case OffsetMinimum:
		if opts.Offset != 0 {
			return 0, fmt.Errorf("%w: %d", ErrOffsetConflict, opts.Offset)
		}
	default:
		return 0, fmt.Errorf("%w: offset mode %d", ErrUnknownOption, int(opts.OffsetMode))
	}

	if rs == nil {
		return 0, ErrNotRewindable
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotRewindable, err)
	}

	minimum, err := scanMinimum(rs, opts.BlankLines)
	if err != nil {
		return 0, err
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotRewindable, err)
	}

	return minimum, nil
}

func scanMinimum(r io.Reader, blanks BlankLines) (int64, error) {
	var minimum int64

	chunks := newChunker(r, DefaultChunkSize)
	for chunks.Next() {
		for i, text := range chunks.Lines() {
			v, ok, err := parseLine(text, blanks)
			if err != nil {
				return 0, &LineError{Line: chunks.LineNumber(i), Text: text, Err: err}
			}
			if ok && v < minimum {
				minimum = v
			}
		}
	}

	if err := chunks.Err(); err != nil {
		return 0, err
	}

	return minimum, nil
}
