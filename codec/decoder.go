// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/multierr"

	"github.com/ik5/sampletext/sample"
)

// Decode writes every word of src as a decimal line to w, in stream order.
// It returns the number of lines written. src is not closed.
func Decode(src sample.Source, w io.Writer, opts DecodeOptions) (int64, error) {
	size, err := opts.bufferSize()
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	buf := make([]uint16, size)
	line := make([]byte, 0, len("65535\n"))

	var lines int64
	for {
		n, rerr := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			line = strconv.AppendUint(line[:0], uint64(v), 10)
			line = append(line, '\n')
			if _, err := bw.Write(line); err != nil {
				return lines, fmt.Errorf("writing text: %w", err)
			}
			lines++
		}

		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			// keep the lines decoded so far
			return lines, multierr.Append(
				fmt.Errorf("reading samples: %w", rerr),
				bw.Flush(),
			)
		}
	}

	if err := bw.Flush(); err != nil {
		return lines, fmt.Errorf("writing text: %w", err)
	}

	return lines, nil
}
