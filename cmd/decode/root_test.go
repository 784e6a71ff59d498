// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

func TestDecode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte{0x01, 0x00, 0x02, 0x00, 0xFF}, 0o600))

	stdout, _, err := execute(t, in, out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(data))
}

func TestDecode_RawWhateverTheName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "capture.wav")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte{0x01, 0x00, 0x02, 0x00}, 0o600))

	_, _, err := execute(t, in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(data))

	// --detect trusts the extension and rejects the missing RIFF header
	_, stderr, err := execute(t, "--detect", in, out)
	require.Error(t, err)
	assert.Contains(t, stderr, "decoding wav input")

	data, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(data))
}

func TestDecode_SmallBuffer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}, 0o600))

	_, _, err := execute(t, "--buffer-size", "1", in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", string(data))
}

func TestDecode_Config(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// raw words stored under a .wav name, the config forces the raw format
	// over detection
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.txt")
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(in, []byte{0x07, 0x00}, 0o600))
	require.NoError(t, os.WriteFile(cfg, []byte("decode:\n  format: raw\n  detect: true\n"), 0o600))

	_, _, err := execute(t, "--config", cfg, in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "7\n", string(data))

	// an explicit flag wins over the file
	_, _, err = execute(t, "--config", cfg, "--format", "wav", in, out)
	require.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(in, []byte{0x01, 0x00}, 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{}},
		{name: "one argument", args: []string{in}},
		{name: "missing input", args: []string{filepath.Join(dir, "missing.bin"), filepath.Join(dir, "a.txt")}},
		{name: "unwritable output", args: []string{in, filepath.Join(dir, "no", "such", "dir.txt")}},
		{name: "unknown format", args: []string{"--format", "flac", in, filepath.Join(dir, "b.txt")}},
		{name: "bad buffer", args: []string{"--buffer-size", "-4", in, filepath.Join(dir, "c.txt")}},
		{name: "bad log level", args: []string{"--log-level", "loud", in, filepath.Join(dir, "d.txt")}},
		{name: "missing config", args: []string{"--config", filepath.Join(dir, "none.yaml"), in, filepath.Join(dir, "e.txt")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, stderr, "Error:")
		})
	}
}
