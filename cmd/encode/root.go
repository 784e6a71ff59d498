// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/sampletext"
	"github.com/ik5/sampletext/codec"
	"github.com/ik5/sampletext/internal/config"
)

type options struct {
	offset     int64
	offsetMode string
	chunkSize  int
	blankLines string
	narrowing  string
	container  string
	sampleRate int
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "encode <text-input-path> <binary-output-path>",
		Short: "Convert decimal text lines to signed 16-bit samples",
		Long: `Reads one base-10 integer per line, subtracts the offset and writes each
result as a signed little-endian 16-bit sample. Lines are written in groups
of --chunk-size; groups written before an error stay in the output.

The offset is printed as "min: <offset>" before any line is processed. With
--offset-mode minimum it is the smallest input value, or 0 when every value
is non-negative, and --offset is rejected.

Examples:
	  encode capture.txt capture.bin
	  encode --offset-mode minimum levels.txt levels.bin
	  encode --container wav --sample-rate 16000 capture.txt capture.wav`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyConfig(cmd); err != nil {
				return err
			}

			encOpts, err := opts.encodeFileOptions()
			if err != nil {
				return err
			}
			encOpts.OffsetResolved = func(offset int64) {
				fmt.Fprintf(cmd.OutOrStdout(), "min: %d\n", offset)
			}

			return run(args[0], args[1], opts.logLevel, encOpts)
		},
	}

	flags := cmd.Flags()
	flags.Int64VarP(&opts.offset, "offset", "o", 0, "value subtracted from every line")
	flags.StringVar(&opts.offsetMode, "offset-mode", codec.OffsetConstant.String(), "offset source (constant, minimum)")
	flags.IntVar(&opts.chunkSize, "chunk-size", codec.DefaultChunkSize, "lines per write")
	flags.StringVar(&opts.blankLines, "blank-lines", codec.BlankFail.String(), "blank line policy (fail, skip)")
	flags.StringVar(&opts.narrowing, "narrowing", codec.NarrowStrict.String(), "out of range policy (strict, wrap)")
	flags.StringVar(&opts.container, "container", sampletext.ContainerRaw, "output container (raw, wav)")
	flags.IntVar(&opts.sampleRate, "sample-rate", sampletext.DefaultSampleRate, "sample rate written to wav headers")
	flags.StringVarP(&opts.configPath, "config", "c", "", "optional YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	return cmd
}

// applyConfig fills every flag the user did not set from the config file.
func (o *options) applyConfig(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}

	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	enc := cfg.Encode

	if !flags.Changed("offset") && enc.Offset != 0 {
		o.offset = enc.Offset
	}
	if !flags.Changed("offset-mode") && enc.OffsetMode != "" {
		o.offsetMode = enc.OffsetMode
	}
	if !flags.Changed("chunk-size") && enc.ChunkSize != 0 {
		o.chunkSize = enc.ChunkSize
	}
	if !flags.Changed("blank-lines") && enc.BlankLines != "" {
		o.blankLines = enc.BlankLines
	}
	if !flags.Changed("narrowing") && enc.Narrowing != "" {
		o.narrowing = enc.Narrowing
	}
	if !flags.Changed("container") && enc.Container != "" {
		o.container = enc.Container
	}
	if !flags.Changed("sample-rate") && enc.SampleRate != 0 {
		o.sampleRate = enc.SampleRate
	}
	if !flags.Changed("log-level") && cfg.LogLevel != "" {
		o.logLevel = cfg.LogLevel
	}

	return nil
}

func (o *options) encodeFileOptions() (sampletext.EncodeFileOptions, error) {
	var res sampletext.EncodeFileOptions

	mode, err := codec.ParseOffsetMode(o.offsetMode)
	if err != nil {
		return res, err
	}
	blanks, err := codec.ParseBlankLines(o.blankLines)
	if err != nil {
		return res, err
	}
	narrowing, err := codec.ParseNarrowing(o.narrowing)
	if err != nil {
		return res, err
	}

	res.EncodeOptions = codec.EncodeOptions{
		Offset:     o.offset,
		OffsetMode: mode,
		ChunkSize:  o.chunkSize,
		BlankLines: blanks,
		Narrowing:  narrowing,
	}
	res.Container = o.container
	res.SampleRate = o.sampleRate

	return res, nil
}

func run(in, out, logLevel string, opts sampletext.EncodeFileOptions) error {
	logger, err := config.NewLogger(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	conv := sampletext.Converter{
		Registry: sampletext.DefaultRegistry(),
		Logger:   logger.Named("encode"),
	}

	_, err = conv.EncodeFile(in, out, opts)

	return err
}
