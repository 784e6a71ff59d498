// SPDX-License-Identifier: EPL-2.0

// Package config loads the optional YAML settings shared by the command line tools.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Config mirrors the command line flags. Zero values mean "not set".
type Config struct {
	LogLevel   string     `yaml:"log_level"`
	Decode     Decode     `yaml:"decode"`
	Encode     Encode     `yaml:"encode"`
	Compress   Compress   `yaml:"compress"`
	Decompress Decompress `yaml:"decompress"`
}

type Decode struct {
	Format     string `yaml:"format"`
	Detect     bool   `yaml:"detect"`
	BufferSize int    `yaml:"buffer_size"`
}

type Encode struct {
	Offset     int64  `yaml:"offset"`
	OffsetMode string `yaml:"offset_mode"`
	ChunkSize  int    `yaml:"chunk_size"`
	BlankLines string `yaml:"blank_lines"`
	Narrowing  string `yaml:"narrowing"`
	Container  string `yaml:"container"`
	SampleRate int    `yaml:"sample_rate"`
}

type Compress struct {
	BlockSize int  `yaml:"block_size"` // words per block
	NoEntropy bool `yaml:"no_entropy"`
}

type Decompress struct {
	Text bool `yaml:"text"`
}

// LoadConfig reads a YAML file; a leading ~ in filePath is expanded.
func LoadConfig(filePath string) (*Config, error) {
	path, err := homedir.Expand(filePath)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}
