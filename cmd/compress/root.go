// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/sampletext"
	"github.com/ik5/sampletext/internal/config"
	"github.com/ik5/sampletext/powerstrip"
)

type options struct {
	blockSize  int
	noEntropy  bool
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "compress <binary-input-path> <compressed-output-path>",
		Short: "Losslessly compress a stream of 16-bit words",
		Long: `Reads the input as consecutive little-endian 16-bit words and writes a
powerstrip stream: blocks of --block-size words, each stripped of its most
common value, delta coded, bit packed and, unless --no-entropy is given,
zstd compressed when that helps.

The input must hold a whole number of words. The achieved size is printed
when done.

Examples:
	  compress capture.bin capture.pstrip
	  compress --block-size 65536 --no-entropy capture.bin capture.pstrip`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyConfig(cmd); err != nil {
				return err
			}

			start := time.Now()
			res, err := run(args[0], args[1], opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Compressed to %.2f%% of the original size in %.2f seconds\n",
				100*res.Ratio(), time.Since(start).Seconds())

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.blockSize, "block-size", "b", powerstrip.DefaultBlockWords, "words per compressed block")
	flags.BoolVar(&opts.noEntropy, "no-entropy", false, "skip the zstd stage")
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
	if !flags.Changed("block-size") && cfg.Compress.BlockSize != 0 {
		o.blockSize = cfg.Compress.BlockSize
	}
	if !flags.Changed("no-entropy") && cfg.Compress.NoEntropy {
		o.noEntropy = true
	}
	if !flags.Changed("log-level") && cfg.LogLevel != "" {
		o.logLevel = cfg.LogLevel
	}

	return nil
}

func run(in, out string, opts options) (sampletext.CompressResult, error) {
	logger, err := config.NewLogger(opts.logLevel)
	if err != nil {
		return sampletext.CompressResult{}, err
	}
	defer func() { _ = logger.Sync() }()

	conv := sampletext.Converter{Logger: logger.Named("compress")}

	return conv.CompressFile(in, out, sampletext.CompressFileOptions{
		Options: powerstrip.Options{BlockWords: opts.blockSize, NoEntropy: opts.noEntropy},
	})
}
