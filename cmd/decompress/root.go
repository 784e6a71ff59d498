// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/sampletext"
	"github.com/ik5/sampletext/internal/config"
)

type options struct {
	text       bool
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "decompress <compressed-input-path> <output-path>",
		Short: "Restore the words of a compressed stream",
		Long: `Reads a stream written by compress and writes the original little-endian
16-bit words, or with --text one decimal line per word. The output is
created or truncated.

Examples:
	  decompress capture.pstrip capture.bin
	  decompress --text capture.pstrip capture.txt`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyConfig(cmd); err != nil {
				return err
			}

			start := time.Now()
			if err := run(args[0], args[1], opts); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Decompressed in %.2f seconds\n", time.Since(start).Seconds())

			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.text, "text", "t", false, "write decimal lines instead of binary words")
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
	if !flags.Changed("text") && cfg.Decompress.Text {
		o.text = true
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

	conv := sampletext.Converter{Logger: logger.Named("decompress")}

	_, err = conv.DecompressFile(in, out, sampletext.DecompressFileOptions{Text: opts.text})

	return err
}
