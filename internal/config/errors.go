// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var ErrUnknownLogLevel = errors.New("unknown log level")
