// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const formatPCM = 1

// Writer is a sample.Sink producing a mono 16-bit PCM WAV file.
// The header sizes are only final after Close, which is why it needs a seeker.
type Writer struct {
	enc     *gowav.Encoder
	buf     *goaudio.IntBuffer
	started bool
}

func NewWriter(ws io.WriteSeeker, sampleRate int) (*Writer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	return &Writer{
		enc: gowav.NewEncoder(ws, sampleRate, 16, 1, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}, nil
}

func (w *Writer) WriteSamples(src []int16) error {
	if len(src) == 0 {
		return nil
	}

	w.buf.Data = w.buf.Data[:0]
	for _, s := range src {
		w.buf.Data = append(w.buf.Data, int(s))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	w.started = true

	return nil
}

// Close finalises the WAV header. It does not close the underlying writer.
// Without any samples the result is a header with an empty data chunk.
func (w *Writer) Close() error {
	if !w.started {
		// go-audio only emits the header on the first Write
		w.buf.Data = w.buf.Data[:0]
		if err := w.enc.Write(w.buf); err != nil {
			return fmt.Errorf("writing wav header: %w", err)
		}
		w.started = true
	}

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalising wav: %w", err)
	}

	return nil
}
