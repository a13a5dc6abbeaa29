package feather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

func TestAlignCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s     string
		width int
		align Alignment
		want  string
	}{
		"left":      {s: "ab", width: 5, align: AlignLeft, want: "ab   "},
		"right":     {s: "ab", width: 5, align: AlignRight, want: "   ab"},
		"center":    {s: "ab", width: 5, align: AlignCenter, want: " ab  "},
		"exact":     {s: "abc", width: 3, align: AlignRight, want: "abc"},
		"overflow":  {s: "abcd", width: 2, align: AlignLeft, want: "abcd"},
		"wide rune": {s: "你", width: 4, align: AlignLeft, want: "你  "},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alignCell(tt.s, tt.width, tt.align))
		})
	}
}

func TestFormatTableCellTinyWidth(t *testing.T) {
	t.Parallel()
	// Widths of 3 or less truncate without an ellipsis.
	assert.Equal(t, "abc", formatTableCell("abcdef", 3, AlignLeft))
	assert.Equal(t, "a...", formatTableCell("abcdef", 4, AlignLeft))
	assert.Equal(t, "abcdef", formatTableCell("abcdef", 0, AlignLeft))
}

func TestComputeWidths(t *testing.T) {
	t.Parallel()
	widths := computeWidths([]string{"id", "name"}, [][]string{{"100", "Al"}, {"2", "你好吗"}})
	assert.Equal(t, []int{3, 6}, widths)
}

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()
	got := escapeMarkdown([]string{"a|b", "line1\nline2", "crlf\r\nend", "plain"})
	assert.Equal(t, []string{`a\|b`, "line1<br>line2", "crlf<br>end", "plain"}, got)
}

func TestExtendAlignsNoop(t *testing.T) {
	t.Parallel()
	aligns := extendAligns([]Alignment{AlignRight, AlignRight, AlignRight}, 2)
	assert.Len(t, aligns, 2)
}

func TestExtendAlignsPads(t *testing.T) {
	t.Parallel()
	aligns := extendAligns([]Alignment{AlignRight}, 3)
	assert.Equal(t, []Alignment{AlignRight, AlignLeft, AlignLeft}, aligns)
}

func TestFrameValidate(t *testing.T) {
	t.Parallel()
	fr := Frame{
		Header: []string{"a", "b"},
		Rows:   [][]Cell{{Int(1), Int(2)}, {Int(3)}},
	}
	err := fr.validate()
	require.ErrorIs(t, err, ErrRaggedRow)
	assert.Contains(t, err.Error(), "row 1 has 1 cells, header has 2")

	fr.Rows = fr.Rows[:1]
	require.NoError(t, fr.validate())
}

func TestRecordMarshalJSONKeyOrder(t *testing.T) {
	t.Parallel()
	rec := record{keys: []string{"z", "a"}, cells: []Cell{Int(1), nil}}
	out, err := rec.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":null}`, string(out))
	assert.Equal(t, `{"z":1,"a":null}`, string(out))
}

func TestRecordMarshalJSONNoHTMLEscape(t *testing.T) {
	t.Parallel()
	rec := record{keys: []string{"<k>"}, cells: []Cell{String("a&b<c>")}}
	out, err := rec.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"<k>":"a&b<c>"}`, string(out))
}

func TestWriteJoinedError(t *testing.T) {
	t.Parallel()
	err := writeJoined(&errWriterInternal{}, []string{"a", "b"}, ",")
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteLinesEmpty(t *testing.T) {
	t.Parallel()
	// Nothing is written, so the failing writer is never called.
	require.NoError(t, writeLines(&errWriterInternal{}, nil))
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
