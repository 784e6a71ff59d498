// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/sampletext/formats/vorbis"
)

// ExampleDecoder_Decode_errorHandling shows that non-Ogg input is rejected up front.
func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("not an ogg file")))
	fmt.Println("rejected:", err != nil)
	// Output:
	// rejected: true
}
