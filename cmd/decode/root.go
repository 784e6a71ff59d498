// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/sampletext"
	"github.com/ik5/sampletext/codec"
	"github.com/ik5/sampletext/internal/config"
)

type options struct {
	format     string
	detect     bool
	bufferSize int
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "decode <binary-input-path> <text-output-path>",
		Short: "Convert 16-bit sample words to decimal text lines",
		Long: `Reads the input as consecutive little-endian unsigned 16-bit words and
writes each one as a decimal line (0 to 65535) to the output file, which is
created or truncated. A trailing odd byte is ignored.

The input is read as raw words whatever its name. With --format, or with
--detect to pick the format from the extension, WAV, AIFF, MP3, Ogg Vorbis
and compressed (pstrip) inputs are reduced to their 16-bit samples first.

Examples:
	  decode capture.bin capture.txt
	  decode --format wav recording.wav samples.txt
	  decode --detect capture.pstrip capture.txt`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyConfig(cmd); err != nil {
				return err
			}

			return run(args[0], args[1], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "", "input format (raw, wav, aiff, mp3, ogg, pstrip); raw when empty")
	flags.BoolVar(&opts.detect, "detect", false, "pick the input format from the file extension")
	flags.IntVar(&opts.bufferSize, "buffer-size", codec.DefaultBufferSize, "samples read per iteration")
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
	if !flags.Changed("format") && cfg.Decode.Format != "" {
		o.format = cfg.Decode.Format
	}
	if !flags.Changed("detect") && cfg.Decode.Detect {
		o.detect = true
	}
	if !flags.Changed("buffer-size") && cfg.Decode.BufferSize != 0 {
		o.bufferSize = cfg.Decode.BufferSize
	}
	if !flags.Changed("log-level") && cfg.LogLevel != "" {
		o.logLevel = cfg.LogLevel
	}

	return nil
}

func run(in, out string, opts options) error {
	logger, err := config.NewLogger(opts.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	conv := sampletext.Converter{
		Registry: sampletext.DefaultRegistry(),
		Logger:   logger.Named("decode"),
	}

	_, err = conv.DecodeFile(in, out, sampletext.DecodeFileOptions{
		DecodeOptions: codec.DecodeOptions{BufferSize: opts.bufferSize},
		Format:        opts.format,
		Detect:        opts.detect,
	})
	if err != nil {
		logger.Debug("decode aborted", zap.Error(err))
		return err
	}

	return nil
}
