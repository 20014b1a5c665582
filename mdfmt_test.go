package mdfmt_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/mdfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func format(t *testing.T, doc string) string {
	t.Helper()
	out, notices, err := mdfmt.Format(doc, false)
	require.NoError(t, err)
	require.Empty(t, notices)
	return out
}

func TestFormatBasicTable(t *testing.T) {
	t.Parallel()
	in := "|a|b|\n|-|-|\n|1|2|\n"
	want := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatTableInProse(t *testing.T) {
	t.Parallel()
	in := "# Title\n\n|Name|Age|\n|---|---|\n|Ann|3|\n\ntrailing text\n"
	want := "# Title\n\n| Name | Age |\n|------|-----|\n| Ann  | 3   |\n\ntrailing text\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatAlignmentRoundTrip(t *testing.T) {
	t.Parallel()
	in := "|A|B|C|D|\n|:-|-:|:-:|---|\n|1|2|3|4|\n"
	want := "| A | B | C | D |\n|:--|--:|:-:|---|\n| 1 | 2 | 3 | 4 |\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatAlignmentWiderColumns(t *testing.T) {
	t.Parallel()
	in := "|Name|Count|\n|:---|----:|\n|total|12345|\n"
	want := "| Name  | Count |\n|:------|------:|\n| total | 12345 |\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatIdempotent(t *testing.T) {
	t.Parallel()
	docs := []string{
		"|a|b|\n|-|-|\n|1|2|\n",
		"text\n\n| x | yy |\n|:--|---:|\n| 1 | 2  |\nafter\n",
		"```\n|a|b|\n```\n|c|d|\n|-|-|\n",
		"plain text only\n",
	}
	for _, doc := range docs {
		once := format(t, doc)
		twice := format(t, once)
		assert.Equal(t, once, twice)
	}
}

func TestFormatPassThrough(t *testing.T) {
	t.Parallel()
	in := "no tables here\njust text\n\nand a | stray pipe\n"
	assert.Equal(t, in, format(t, in))
}

func TestFormatEmptyDocument(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", format(t, ""))
}

func TestFormatNormalizesTrailingNewline(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "last line\n", format(t, "last line"))
}

func TestFormatFenceTransparency(t *testing.T) {
	t.Parallel()
	in := "before\n```\n|a|b|\n|-|-|\n|1|2|\n```\nafter\n"
	assert.Equal(t, in, format(t, in))
}

func TestFormatFenceWithLanguage(t *testing.T) {
	t.Parallel()
	in := "```go\n\tx | y\n```\n"
	assert.Equal(t, in, format(t, in))
}

func TestFormatOddFencePreservedByteForByte(t *testing.T) {
	t.Parallel()
	in := "text\n```\n|a|b|\n|-|-|\n"
	assert.Equal(t, in, format(t, in))
}

func TestFormatTableResumesAcrossFence(t *testing.T) {
	t.Parallel()
	// Parser state survives a fence: the table opened before the code
	// block is still open after it, and its render is emitted when the
	// first post-fence line ends it.
	in := "|a|b|\n|-|-|\n```\ncode\n```\n|1|2|\n|3|4|\n"
	out := format(t, in)
	assert.Contains(t, out, "```\ncode\n```")
	assert.Contains(t, out, "| a | b |\n|---|---|\n")
}

func TestFormatMalformedSeparatorFallsBack(t *testing.T) {
	t.Parallel()
	in := "|A|B|\n|--|notdash|\n"
	assert.Equal(t, in, format(t, in))
}

func TestFormatSeparatorCountMismatchFallsBack(t *testing.T) {
	t.Parallel()
	in := "|A|B|\n|---|---|---|\ntext\n"
	out := format(t, in)
	assert.Contains(t, out, "|A|B|\n")
	assert.NotContains(t, out, "| A | B |")
}

func TestFormatColumnCountMismatchMidTable(t *testing.T) {
	t.Parallel()
	in := "|a|b|\n|-|-|\n|1|2|\n|x|y|z|\nplain\n"
	want := "|a|b|\n|-|-|\n|1|2|\n|x|y|z|\nplain\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatBrokenTableLineStartsNewTable(t *testing.T) {
	t.Parallel()
	// The mismatched line is reclassified from scratch, so together with
	// a following separator it opens a brand-new table.
	in := "|a|b|\n|-|-|\n|x|y|z|\n|-|-|-|\n|1|2|3|\n"
	want := "|a|b|\n|-|-|\n| x | y | z |\n|---|---|---|\n| 1 | 2 | 3 |\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatHeaderCandidateChain(t *testing.T) {
	t.Parallel()
	// A failed separator line that is itself a pipe row becomes the next
	// header candidate, so the third line can confirm it.
	in := "|a|b|\n|c|d|\n|-|-|\n|1|2|\n"
	want := "|a|b|\n| c | d |\n|---|---|\n| 1 | 2 |\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatUnicodeWidth(t *testing.T) {
	t.Parallel()
	in := "|名前|x|\n|-|-|\n|ab|字|\n"
	want := "| 名前 | x  |\n|------|----|\n| ab   | 字 |\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatEndOfInputFlush(t *testing.T) {
	t.Parallel()
	in := "|a|b|\n|-|-|\n|1|2|"
	want := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatHeaderAtEOFEmittedVerbatim(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "|a|b|\n", format(t, "|a|b|"))
}

func TestFormatEmptyCellsWidthFloor(t *testing.T) {
	t.Parallel()
	in := "| | |\n|-|-|\n"
	want := "|   |   |\n|---|---|\n"
	assert.Equal(t, want, format(t, in))
}

func TestFormatStrictNotices(t *testing.T) {
	t.Parallel()
	in := "x\n|a|b|\n|-|-|\n|1|2|3|\n"

	loose, looseNotices, err := mdfmt.Format(in, false)
	require.NoError(t, err)
	assert.Empty(t, looseNotices)

	strict, strictNotices, err := mdfmt.Format(in, true)
	require.NoError(t, err)
	require.Len(t, strictNotices, 1)
	// The broken table's header lands on output line 2.
	assert.Equal(t, 2, strictNotices[0].Line)

	// Strict mode never changes the output.
	assert.Equal(t, loose, strict)
}

func TestFormatStrictNoticePerBrokenTable(t *testing.T) {
	t.Parallel()
	in := strings.Repeat("|a|b|\n|-|-|\n|1|2|3|\nx\n", 2)
	_, notices, err := mdfmt.Format(in, true)
	require.NoError(t, err)
	assert.Len(t, notices, 2)
}

func TestNoticeString(t *testing.T) {
	t.Parallel()
	n := mdfmt.Notice{Line: 7}
	assert.Equal(t, "table at line 7 appears broken; left unformatted", n.String())
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	notices, err := mdfmt.Write(&buf, "|a|b|\n|-|-|\n", false)
	require.NoError(t, err)
	assert.Empty(t, notices)
	assert.Equal(t, "| a | b |\n|---|---|\n", buf.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	_, err := mdfmt.Write(&errWriter{}, "text\n", false)
	assert.Error(t, err)
}

var errWrite = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }
