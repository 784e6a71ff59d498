// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/sampletext/formats/aiff"
)

// ExampleDecoder_Decode_errorHandling shows the sentinel returned for non-AIFF input.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("RIFF....WAVE")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("not an AIFF file")
	}
	// Output:
	// not an AIFF file
}
