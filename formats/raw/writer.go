// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/sampletext/utils"
)

// Writer is a sample.Sink emitting headerless little-endian signed 16-bit words.
// Each WriteSamples call is a single Write on the underlying writer.
type Writer struct {
	w   io.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (wr *Writer) WriteSamples(src []int16) error {
	if len(src) == 0 {
		return nil
	}

	wr.buf = wr.buf[:0]
	for _, s := range src {
		wr.buf = binary.LittleEndian.AppendUint16(wr.buf, utils.WordOf(s))
	}

	if _, err := wr.w.Write(wr.buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}

	return nil
}

// Close does not close the underlying writer.
func (wr *Writer) Close() error { return nil }
