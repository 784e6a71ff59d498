// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"
)

var (
	ErrNotNumber        = errors.New("not a base-10 integer")
	ErrBlankLine        = errors.New("blank line")
	ErrOutOfRange       = errors.New("value out of signed 16-bit range")
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrInvalidBuffer    = errors.New("buffer size must be positive")
	ErrNotRewindable    = errors.New("minimum offset needs a rewindable input")
	ErrUnknownOption    = errors.New("unknown option value")
	ErrOffsetConflict   = errors.New("an explicit offset cannot be combined with the minimum offset mode")
)

// LineError reports the text line that stopped an encode or an offset scan.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
