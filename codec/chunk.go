// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"bufio"
	"fmt"
	"io"
)

// chunker groups text lines into chunks of at most size lines. A short chunk
// holds only the lines that exist; nothing pads it.
type chunker struct {
	sc    *bufio.Scanner
	lines []string
	first int // 1-based number of lines[0]
	next  int
	err   error
}

func newChunker(r io.Reader, size int) *chunker {
	return &chunker{
		sc:    bufio.NewScanner(r),
		lines: make([]string, 0, size),
		next:  1,
	}
}

// Next fills the chunk. It returns false once input is exhausted or failed.
func (c *chunker) Next() bool {
	if c.err != nil {
		return false
	}

	c.lines = c.lines[:0]
	c.first = c.next
	for len(c.lines) < cap(c.lines) && c.sc.Scan() {
		c.lines = append(c.lines, c.sc.Text())
		c.next++
	}

	if err := c.sc.Err(); err != nil {
		c.err = fmt.Errorf("reading text: %w", err)
		return false
	}

	return len(c.lines) > 0
}

func (c *chunker) Lines() []string { return c.lines }

// LineNumber returns the 1-based input line of Lines()[i].
func (c *chunker) LineNumber(i int) int { return c.first + i }

func (c *chunker) Err() error { return c.err }
