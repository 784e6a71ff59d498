// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the stream in Hz, 0 when the input carries none.
	SampleRate() int
	// Channels count (1 for headerless streams).
	Channels() int
	// ReadSamples fills dst with 16-bit sample words in stream order.
	// Returns number of words written. When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []uint16) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Sink receives signed 16-bit samples. Each call is written through before returning.
type Sink interface {
	WriteSamples(src []int16) error
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "raw", "wav", "mp3").
type Registry struct {
	codecs   map[string]Decoder
	fallback string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// SetFallback names the format Lookup uses when a path has no registered extension.
func (r *Registry) SetFallback(format string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.fallback = strings.ToLower(format)
}

// Formats lists the registered format keys.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}

	return keys
}

// Lookup resolves a decoder from the extension of path.
func (r *Registry) Lookup(path string) (Decoder, string, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if d, ok := r.Get(ext); ok {
		return d, strings.ToLower(ext), nil
	}

	r.mtx.Lock()
	fallback := r.fallback
	r.mtx.Unlock()

	if fallback != "" {
		if d, ok := r.Get(fallback); ok {
			return d, fallback, nil
		}
	}

	return nil, "", &UnknownFormatError{Format: ext}
}
