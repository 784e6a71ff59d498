// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.writes++
	return c.Buffer.Write(p)
}

func TestWriter_LittleEndianSigned(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	w := NewWriter(buf)

	if err := w.WriteSamples([]int16{1, 2, -1, -32768, 32767}); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}

	want := []byte{0x01, 0x00, 0x02, 0x00, 0xff, 0xff, 0x00, 0x80, 0xff, 0x7f}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteSamples() wrote % x, want % x", buf.Bytes(), want)
	}
}

func TestWriter_OneWritePerCall(t *testing.T) {
	t.Parallel()

	cw := &countingWriter{}
	w := NewWriter(cw)

	_ = w.WriteSamples([]int16{1, 2, 3})
	_ = w.WriteSamples([]int16{4})
	_ = w.WriteSamples(nil)

	if cw.writes != 2 {
		t.Errorf("underlying writes = %d, want 2", cw.writes)
	}
	if cw.Len() != 8 {
		t.Errorf("wrote %d bytes, want 8", cw.Len())
	}
}

func TestWriter_Concatenation(t *testing.T) {
	t.Parallel()

	samples := []int16{5, -5, 100, -100, 0, 7}

	whole := new(bytes.Buffer)
	_ = NewWriter(whole).WriteSamples(samples)

	pieces := new(bytes.Buffer)
	w := NewWriter(pieces)
	for i := range samples {
		_ = w.WriteSamples(samples[i : i+1])
	}

	if !bytes.Equal(whole.Bytes(), pieces.Bytes()) {
		t.Errorf("chunked output % x differs from whole output % x", pieces.Bytes(), whole.Bytes())
	}
}

func TestWriter_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	w := NewWriter(failingWriter{err: boom})

	if err := w.WriteSamples([]int16{1}); !errors.Is(err, boom) {
		t.Errorf("WriteSamples() error = %v, want %v", err, boom)
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	samples := []int16{0, 1, -1, 12345, -12345}
	_ = NewWriter(buf).WriteSamples(samples)

	got := readAll(t, buf.Bytes(), 2)
	for i, s := range samples {
		if got[i] != uint16(s) {
			t.Errorf("word[%d] = %d, want %d", i, got[i], uint16(s))
		}
	}
}
