// SPDX-License-Identifier: EPL-2.0

package sampletext

import "errors"

var (
	ErrUnknownContainer = errors.New("unknown output container")
	ErrSamePath         = errors.New("input and output are the same file")
	ErrHalfWord         = errors.New("input ends with half a 16-bit word")
)
