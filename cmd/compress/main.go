// SPDX-License-Identifier: EPL-2.0

// Command compress packs a file of little-endian 16-bit words into a
// powerstrip stream.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
