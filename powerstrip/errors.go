// SPDX-License-Identifier: EPL-2.0

package powerstrip

import "errors"

var (
	ErrCorrupt          = errors.New("corrupt powerstrip block")
	ErrTruncated        = errors.New("truncated powerstrip stream")
	ErrInvalidBlockSize = errors.New("block size out of range")
	ErrNilReader        = errors.New("nil reader")
)
