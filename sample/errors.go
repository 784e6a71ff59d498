// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"fmt"
)

var ErrUnknownFormat = errors.New("unknown sample format")

// UnknownFormatError names the format key that no decoder is registered for.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownFormat, e.Format)
}

func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }
