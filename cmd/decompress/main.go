// SPDX-License-Identifier: EPL-2.0

// Command decompress restores the words of a powerstrip stream.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
