// SPDX-License-Identifier: EPL-2.0

package sampletext

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ik5/sampletext/codec"
	"github.com/ik5/sampletext/formats/raw"
	"github.com/ik5/sampletext/powerstrip"
)

// CompressFileOptions configure Converter.CompressFile.
type CompressFileOptions struct {
	powerstrip.Options
}

// DecompressFileOptions configure Converter.DecompressFile.
type DecompressFileOptions struct {
	codec.DecodeOptions

	// Text writes one decimal line per word instead of raw words.
	Text bool
}

// CompressResult reports what CompressFile read and wrote.
type CompressResult struct {
	powerstrip.Stats

	InputBytes int64
}

// Ratio is the compressed size as a fraction of the input, 0 for an empty input.
func (r CompressResult) Ratio() float64 {
	if r.InputBytes == 0 {
		return 0
	}

	return float64(r.Bytes) / float64(r.InputBytes)
}

// CompressFile compresses the raw words of in into out. An input with an odd
// number of bytes is rejected before out is touched.
func (c *Converter) CompressFile(in, out string, opts CompressFileOptions) (res CompressResult, err error) {
	if err := checkPaths(in, out); err != nil {
		return res, err
	}

	log := c.logger().With(zap.String("input", in), zap.String("output", out))

	inFile, err := os.Open(in)
	if err != nil {
		return res, fmt.Errorf("opening input: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(inFile))

	info, err := inFile.Stat()
	if err != nil {
		return res, fmt.Errorf("reading input size: %w", err)
	}
	if info.Size()%raw.WordSize != 0 {
		return res, fmt.Errorf("%w: %s is %d bytes", ErrHalfWord, in, info.Size())
	}
	res.InputBytes = info.Size()

	src, err := raw.Decoder{}.Decode(bufio.NewReader(inFile))
	if err != nil {
		return res, fmt.Errorf("decoding raw input: %w", err)
	}

	outFile, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputPerm)
	if err != nil {
		return res, fmt.Errorf("creating output: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(outFile))

	bw := bufio.NewWriter(outFile)

	log.Debug("compressing",
		zap.Int("block_words", opts.BlockWords),
		zap.Bool("no_entropy", opts.NoEntropy),
	)

	res.Stats, err = powerstrip.Compress(src, bw, opts.Options)
	if err != nil {
		log.Warn("compress failed", zap.Int64("blocks", res.Blocks), zap.Error(err))
		return res, multierr.Append(err, bw.Flush())
	}
	if err := bw.Flush(); err != nil {
		return res, fmt.Errorf("writing output: %w", err)
	}

	log.Info("compressed",
		zap.Int64("blocks", res.Blocks),
		zap.Int64("words", res.Words),
		zap.Int64("bytes", res.Bytes),
		zap.Float64("ratio", res.Ratio()),
	)

	return res, nil
}

// DecompressFile restores a CompressFile output and returns the number of
// words written, as raw words or, with opts.Text, as decimal lines.
func (c *Converter) DecompressFile(in, out string, opts DecompressFileOptions) (words int64, err error) {
	if opts.Text {
		return c.DecodeFile(in, out, DecodeFileOptions{DecodeOptions: opts.DecodeOptions, Format: FormatPowerstrip})
	}

	if err := checkPaths(in, out); err != nil {
		return 0, err
	}

	log := c.logger().With(zap.String("input", in), zap.String("output", out))

	inFile, err := os.Open(in)
	if err != nil {
		return 0, fmt.Errorf("opening input: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(inFile))

	outFile, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputPerm)
	if err != nil {
		return 0, fmt.Errorf("creating output: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(outFile))

	words, err = powerstrip.Decompress(bufio.NewReader(inFile), outFile)
	if err != nil {
		log.Warn("decompress failed", zap.Int64("words", words), zap.Error(err))
		return words, err
	}

	log.Info("decompressed", zap.Int64("words", words))

	return words, nil
}
