// SPDX-License-Identifier: EPL-2.0

package sampletext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ik5/sampletext/codec"
	"github.com/ik5/sampletext/formats/raw"
	"github.com/ik5/sampletext/formats/wav"
	"github.com/ik5/sampletext/sample"
)

// Output containers accepted by EncodeFileOptions.Container.
const (
	ContainerRaw = "raw"
	ContainerWAV = "wav"
)

// DefaultSampleRate is written to WAV headers when no rate is given.
const DefaultSampleRate = 8000

const outputPerm = 0o644

// DecodeFileOptions configure Converter.DecodeFile.
type DecodeFileOptions struct {
	codec.DecodeOptions

	// Format forces a registry key. It wins over Detect.
	Format string
	// Detect resolves the decoder from the input extension. Without Format or
	// Detect the input is read as raw words whatever its name.
	Detect bool
}

// EncodeFileOptions configure Converter.EncodeFile.
type EncodeFileOptions struct {
	codec.EncodeOptions

	Container  string // ContainerRaw when empty
	SampleRate int    // WAV only, DefaultSampleRate when 0

	// OffsetResolved, when set, is called with the offset before any line is
	// encoded. A constant offset is announced before the input is opened.
	OffsetResolved func(offset int64)
}

// Converter runs file to file conversions. The zero value uses DefaultRegistry
// and discards logs.
type Converter struct {
	Registry *sample.Registry
	Logger   *zap.Logger
}

// registry leaves c untouched: a zero Converter may be shared between goroutines.
func (c *Converter) registry() *sample.Registry {
	if c.Registry == nil {
		return DefaultRegistry()
	}

	return c.Registry
}

func (c *Converter) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}

// DecodeFile writes one decimal line per 16-bit word of in to out and returns
// the number of lines written. out is created or truncated once the input has
// been opened and its header accepted, so a rejected input leaves out untouched.
func (c *Converter) DecodeFile(in, out string, opts DecodeFileOptions) (lines int64, err error) {
	if err := checkPaths(in, out); err != nil {
		return 0, err
	}

	dec, format, err := c.decoderFor(in, opts)
	if err != nil {
		return 0, err
	}

	log := c.logger().With(zap.String("input", in), zap.String("output", out), zap.String("format", format))

	inFile, err := os.Open(in)
	if err != nil {
		return 0, fmt.Errorf("opening input: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(inFile))

	src, err := dec.Decode(inFile)
	if err != nil {
		return 0, fmt.Errorf("decoding %s input: %w", format, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(src))

	outFile, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputPerm)
	if err != nil {
		return 0, fmt.Errorf("creating output: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(outFile))

	log.Debug("decoding",
		zap.Int("sample_rate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
	)

	lines, err = codec.Decode(src, outFile, opts.DecodeOptions)
	if err != nil {
		log.Warn("decode failed", zap.Int64("lines", lines), zap.Error(err))
		return lines, err
	}

	log.Info("decoded", zap.Int64("lines", lines))

	return lines, nil
}

func (c *Converter) decoderFor(path string, opts DecodeFileOptions) (sample.Decoder, string, error) {
	switch {
	case opts.Format != "":
		dec, ok := c.registry().Get(opts.Format)
		if !ok {
			return nil, "", &sample.UnknownFormatError{Format: opts.Format}
		}

		return dec, strings.ToLower(opts.Format), nil
	case opts.Detect:
		return c.registry().Lookup(path)
	default:
		return raw.Decoder{}, FormatRaw, nil
	}
}

// EncodeFile parses in as one integer per line and writes the samples to out.
// Chunks written before a failure stay in out.
func (c *Converter) EncodeFile(in, out string, opts EncodeFileOptions) (res codec.EncodeResult, err error) {
	if err := checkPaths(in, out); err != nil {
		return res, err
	}

	container := strings.ToLower(opts.Container)
	switch container {
	case "":
		container = ContainerRaw
	case ContainerRaw, ContainerWAV:
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownContainer, opts.Container)
	}

	log := c.logger().With(zap.String("input", in), zap.String("output", out), zap.String("container", container))

	constant := opts.OffsetMode == codec.OffsetConstant
	if constant && opts.OffsetResolved != nil {
		opts.OffsetResolved(opts.Offset)
	}

	inFile, err := os.Open(in)
	if err != nil {
		return res, fmt.Errorf("opening input: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(inFile))

	offset, err := codec.ResolveOffset(inFile, opts.EncodeOptions)
	if err != nil {
		return res, fmt.Errorf("resolving offset: %w", err)
	}
	if !constant && opts.OffsetResolved != nil {
		opts.OffsetResolved(offset)
	}

	encOpts := opts.EncodeOptions
	encOpts.Offset = offset

	outFile, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputPerm)
	if err != nil {
		return res, fmt.Errorf("creating output: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(outFile))

	sink, err := newSink(outFile, container, opts.SampleRate)
	if err != nil {
		return res, err
	}
	// runs before outFile is closed
	defer multierr.AppendInvoke(&err, multierr.Close(sink))

	log.Debug("encoding",
		zap.Int64("offset", offset),
		zap.Stringer("offset_mode", encOpts.OffsetMode),
		zap.Stringer("narrowing", encOpts.Narrowing),
		zap.Stringer("blank_lines", encOpts.BlankLines),
	)

	res, err = codec.EncodeChunks(inFile, sink, encOpts, func(index int64, samples int) {
		log.Debug("chunk written", zap.Int64("chunk", index), zap.Int("samples", samples))
	})
	if err != nil {
		log.Warn("encode failed",
			zap.Int64("lines", res.Lines),
			zap.Int64("samples", res.Samples),
			zap.Error(err),
		)
		return res, err
	}

	log.Info("encoded",
		zap.Int64("lines", res.Lines),
		zap.Int64("samples", res.Samples),
		zap.Int64("skipped", res.Skipped),
		zap.Int64("chunks", res.Chunks),
	)

	return res, nil
}

func newSink(f *os.File, container string, sampleRate int) (sample.Sink, error) {
	if container == ContainerWAV {
		if sampleRate == 0 {
			sampleRate = DefaultSampleRate
		}

		w, err := wav.NewWriter(f, sampleRate)
		if err != nil {
			return nil, err
		}

		return w, nil
	}

	return raw.NewWriter(f), nil
}

// checkPaths refuses to truncate the input by opening it as the output.
func checkPaths(in, out string) error {
	absIn, err := filepath.Abs(in)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", in, err)
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", out, err)
	}

	if absIn == absOut {
		return fmt.Errorf("%w: %s", ErrSamePath, in)
	}

	return nil
}
