// SPDX-License-Identifier: EPL-2.0

package raw

import "errors"

var (
	ErrNilReader = errors.New("raw: nil reader")
)
