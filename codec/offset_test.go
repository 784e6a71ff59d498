// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/sampletext/internal/sampletest"
)

func TestResolveOffset_Constant(t *testing.T) {
	t.Parallel()

	r := strings.NewReader("-50\n")
	got, err := ResolveOffset(r, EncodeOptions{Offset: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.Equal(t, int64(4), int64(r.Len()), "constant mode does not read the input")
}

func TestResolveOffset_Minimum(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text string
		want int64
	}{
		"negative minimum":   {"5\n-20\n3\n-7\n", -20},
		"all positive":       {"5\n20\n3\n", 0},
		"empty":              {"", 0},
		"single negative":    {"-1", -1},
		"beyond int16 still": {"-100000\n", -100000},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := strings.NewReader(tt.text)
			got, err := ResolveOffset(r, EncodeOptions{OffsetMode: OffsetMinimum})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			pos, _ := r.Seek(0, io.SeekCurrent)
			assert.Zero(t, pos, "input is rewound")
		})
	}
}

func TestResolveOffset_RewindsToStartPosition(t *testing.T) {
	t.Parallel()

	r := strings.NewReader("-99\n-3\n4\n")
	_, _ = r.Seek(4, io.SeekStart)

	got, err := ResolveOffset(r, EncodeOptions{OffsetMode: OffsetMinimum})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), got)

	pos, _ := r.Seek(0, io.SeekCurrent)
	assert.Equal(t, int64(4), pos)
}

func TestResolveOffset_Blanks(t *testing.T) {
	t.Parallel()

	_, err := ResolveOffset(strings.NewReader("1\n\n-4\n"), EncodeOptions{OffsetMode: OffsetMinimum})
	assert.ErrorIs(t, err, ErrBlankLine)

	got, err := ResolveOffset(strings.NewReader("1\n\n-4\n"), EncodeOptions{
		OffsetMode: OffsetMinimum,
		BlankLines: BlankSkip,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-4), got)
}

func TestResolveOffset_ParseError(t *testing.T) {
	t.Parallel()

	_, err := ResolveOffset(strings.NewReader("1\n2\nnope\n"), EncodeOptions{OffsetMode: OffsetMinimum})

	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 3, lineErr.Line)
	assert.ErrorIs(t, err, ErrNotNumber)
}

func TestResolveOffset_NotRewindable(t *testing.T) {
	t.Parallel()

	_, err := ResolveOffset(nil, EncodeOptions{OffsetMode: OffsetMinimum})
	assert.ErrorIs(t, err, ErrNotRewindable)
}

func TestResolveOffset_MinimumRejectsExplicitOffset(t *testing.T) {
	t.Parallel()

	r := strings.NewReader("-5\n3\n")
	_, err := ResolveOffset(r, EncodeOptions{OffsetMode: OffsetMinimum, Offset: 2})
	require.ErrorIs(t, err, ErrOffsetConflict)
	assert.Equal(t, int64(6), int64(r.Len()), "input is not scanned")
}

func TestResolveOffset_UnknownMode(t *testing.T) {
	t.Parallel()

	_, err := ResolveOffset(strings.NewReader(""), EncodeOptions{OffsetMode: OffsetMode(5)})
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestMinimumOffset_ShiftsNonNegative(t *testing.T) {
	t.Parallel()

	text := "-3\n0\n10\n-1\n"
	r := strings.NewReader(text)

	opts := EncodeOptions{OffsetMode: OffsetMinimum}
	offset, err := ResolveOffset(r, opts)
	require.NoError(t, err)
	opts.Offset = offset

	sink := &sampletest.Sink{}
	res, err := Encode(r, sink, opts)
	require.NoError(t, err)

	assert.Equal(t, []int16{0, 3, 13, 2}, sink.Samples())
	assert.Equal(t, int64(-3), res.Offset)
}

func TestRoundTrip_Wrap(t *testing.T) {
	t.Parallel()

	words := make([]uint16, 70000)
	for i := range words {
		words[i] = uint16(i * 7)
	}

	text := new(bytes.Buffer)
	_, err := Decode(sampletest.NewSliceSource(words), text, DecodeOptions{})
	require.NoError(t, err)

	sink := &sampletest.Sink{}
	_, err = Encode(text, sink, EncodeOptions{Narrowing: NarrowWrap})
	require.NoError(t, err)

	got := sink.Samples()
	require.Len(t, got, len(words))
	for i, w := range words {
		if uint16(got[i]) != w {
			t.Fatalf("sample %d = %d, want word %d", i, got[i], w)
		}
	}
}

func TestRoundTrip_StrictRejectsHighWords(t *testing.T) {
	t.Parallel()

	text := new(bytes.Buffer)
	_, err := Decode(sampletest.NewSliceSource([]uint16{1, 32768}), text, DecodeOptions{})
	require.NoError(t, err)

	_, err = Encode(text, &sampletest.Sink{}, EncodeOptions{})
	assert.ErrorIs(t, err, ErrOutOfRange)
}
