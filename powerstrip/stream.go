// SPDX-License-Identifier: EPL-2.0

package powerstrip

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"

	"github.com/ik5/sampletext/sample"
)

const (
	// DefaultBlockWords is the block size used when Options.BlockWords is 0.
	DefaultBlockWords = 256 * 1024
	// MaxBlockWords bounds both the writer's block size and what a reader accepts.
	MaxBlockWords = 1 << 22

	maxFrameSize = 64 << 20
	headerSize   = 8
)

// Entropy stage of a frame, stored in the byte after the length prefix.
const (
	methodPlain byte = 0
	methodZstd  byte = 1
)

var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil)
	})
	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxFrameSize))
	})
)

// Options configure Compress.
type Options struct {
	BlockWords int  // DefaultBlockWords when 0
	NoEntropy  bool // skip the zstd stage
}

// Stats summarise one Compress call.
type Stats struct {
	Blocks int64
	Words  int64
	Bytes  int64 // compressed bytes written, frame headers included
}

// Compress reads src to the end and writes one frame per block of words to w.
func Compress(src sample.Source, w io.Writer, opts Options) (Stats, error) {
	var st Stats

	blockWords := opts.BlockWords
	if blockWords == 0 {
		blockWords = DefaultBlockWords
	}
	if blockWords < 0 || blockWords > MaxBlockWords {
		return st, fmt.Errorf("%w: %d", ErrInvalidBlockSize, opts.BlockWords)
	}

	var enc *zstd.Encoder
	if !opts.NoEntropy {
		var err error
		if enc, err = zstdEncoder(); err != nil {
			return st, fmt.Errorf("creating zstd encoder: %w", err)
		}
	}

	words := make([]uint16, blockWords)
	var body, packed []byte
	for eof := false; !eof; {
		n := 0
		for n < len(words) {
			k, err := src.ReadSamples(words[n:])
			n += k
			if errors.Is(err, io.EOF) {
				eof = true
				break
			}
			if err != nil {
				return st, fmt.Errorf("reading samples: %w", err)
			}
		}
		if n == 0 {
			break
		}

		body = appendBlock(body[:0], words[:n])
		method, payload := methodPlain, body
		if enc != nil {
			packed = enc.EncodeAll(body, packed[:0])
			if len(packed) < len(body) {
				method, payload = methodZstd, packed
			}
		}

		var hdr [headerSize + 1]byte
		binary.LittleEndian.PutUint64(hdr[:], uint64(1+len(payload)))
		hdr[headerSize] = method

		if _, err := w.Write(hdr[:]); err != nil {
			return st, fmt.Errorf("writing frame header: %w", err)
		}
		if _, err := w.Write(payload); err != nil {
			return st, fmt.Errorf("writing frame: %w", err)
		}

		st.Blocks++
		st.Words += int64(n)
		st.Bytes += int64(len(hdr) + len(payload))
	}

	return st, nil
}

// Reader yields the words of a compressed stream. It implements sample.Source.
type Reader struct {
	r io.Reader

	hdr   [headerSize]byte
	frame []byte
	body  []byte
	words []uint16
	pos   int
	err   error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) SampleRate() int { return 0 }
func (r *Reader) Channels() int   { return 1 }
func (r *Reader) Close() error    { return nil }

// ReadSamples fills dst from the current block, loading the next frame when it
// runs out. Errors are sticky.
func (r *Reader) ReadSamples(dst []uint16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	for r.pos == len(r.words) {
		if r.err != nil {
			return 0, r.err
		}
		r.err = r.next()
	}

	n := copy(dst, r.words[r.pos:])
	r.pos += n

	return n, nil
}

func (r *Reader) next() error {
	if _, err := io.ReadFull(r.r, r.hdr[:]); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return ErrTruncated
		default:
			return fmt.Errorf("reading frame header: %w", err)
		}
	}

	size := binary.LittleEndian.Uint64(r.hdr[:])
	if size == 0 || size > maxFrameSize {
		return fmt.Errorf("%w: frame size %d", ErrCorrupt, size)
	}

	if uint64(cap(r.frame)) < size {
		r.frame = make([]byte, size)
	}
	r.frame = r.frame[:size]

	if _, err := io.ReadFull(r.r, r.frame); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return fmt.Errorf("reading frame: %w", err)
	}

	payload := r.frame[1:]
	switch r.frame[0] {
	case methodPlain:
	case methodZstd:
		dec, err := zstdDecoder()
		if err != nil {
			return fmt.Errorf("creating zstd decoder: %w", err)
		}
		if r.body, err = dec.DecodeAll(payload, r.body[:0]); err != nil {
			return fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		payload = r.body
	default:
		return fmt.Errorf("%w: method %d", ErrCorrupt, r.frame[0])
	}

	var err error
	r.words, err = decodeBlock(r.words[:0], payload)
	r.pos = 0
	if err != nil {
		r.words = r.words[:0]
		return err
	}

	return nil
}

// Decoder opens compressed streams for a sample.Registry.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (sample.Source, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	return NewReader(r), nil
}

// Decompress writes the words of the compressed stream r to w as little-endian
// 16-bit words and returns how many were written.
func Decompress(r io.Reader, w io.Writer) (int64, error) {
	if r == nil {
		return 0, ErrNilReader
	}

	src := NewReader(r)
	bw := bufio.NewWriter(w)

	words := make([]uint16, 4096)
	buf := make([]byte, 0, 2*len(words))
	var total int64
	for {
		n, err := src.ReadSamples(words)
		if n > 0 {
			buf = buf[:0]
			for _, v := range words[:n] {
				buf = binary.LittleEndian.AppendUint16(buf, v)
			}
			if _, werr := bw.Write(buf); werr != nil {
				return total, fmt.Errorf("writing words: %w", werr)
			}
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, multierr.Append(err, bw.Flush())
		}
	}

	if err := bw.Flush(); err != nil {
		return total, fmt.Errorf("writing words: %w", err)
	}

	return total, nil
}
