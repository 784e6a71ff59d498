// SPDX-License-Identifier: EPL-2.0

// Command decode writes every little-endian 16-bit word of a binary file as
// one decimal line of text.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
