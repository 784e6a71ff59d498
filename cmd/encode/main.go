// SPDX-License-Identifier: EPL-2.0

// Command encode parses one base-10 integer per line, subtracts an offset and
// writes the values as signed little-endian 16-bit samples.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
