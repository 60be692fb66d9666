package textfmt_test

import (
	"testing"

	"github.com/bjaus/textfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceSpacesWithTab(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		line string
		n    int
		want string
	}{
		"leftover spaces": {line: "      Some text", n: 4, want: "\t  Some text"},
		"two groups":      {line: "        x", n: 4, want: "\t\tx"},
		"single space":    {line: "a b  c", n: 1, want: "a\tb\t\tc"},
		"no match":        {line: "a b", n: 2, want: "a b"},
		"inner run":       {line: "key    value", n: 2, want: "key\t\tvalue"},
		"empty":           {line: "", n: 4, want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textfmt.ReplaceSpacesWithTab(tt.line, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplaceSpacesWithTabInvalid(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1, -8} {
		_, err := textfmt.ReplaceSpacesWithTab("    text", n)
		assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
	}
}

func TestReplaceTabWithSpaces(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		line string
		n    int
		want string
	}{
		"delete":  {line: "\tTest\ttext\t", n: 0, want: "Testtext"},
		"one":     {line: "\tTest\ttext\t", n: 1, want: " Test text "},
		"four":    {line: "\tx", n: 4, want: "    x"},
		"no tabs": {line: "plain", n: 4, want: "plain"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textfmt.ReplaceTabWithSpaces(tt.line, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplaceTabWithSpacesInvalid(t *testing.T) {
	t.Parallel()
	_, err := textfmt.ReplaceTabWithSpaces("\tx", -1)
	assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
}

func TestExpandTabs(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		line  string
		width int
		want  string
	}{
		"leading":     {line: "\tx", width: 4, want: "    x"},
		"after text":  {line: "ab\tc", width: 4, want: "ab  c"},
		"full stop":   {line: "abcd\te", width: 4, want: "abcd    e"},
		"consecutive": {line: "a\t\tb", width: 4, want: "a       b"},
		"wide rune":   {line: "你\tx", width: 4, want: "你  x"},
		"width one":   {line: "a\tb", width: 1, want: "a b"},
		"no tabs":     {line: "plain", width: 8, want: "plain"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textfmt.ExpandTabs(tt.line, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandTabsInvalid(t *testing.T) {
	t.Parallel()
	_, err := textfmt.ExpandTabs("\tx", 0)
	assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
}

func TestTrimLine(t *testing.T) {
	t.Parallel()
	const line = " \t Some text \t "
	tests := map[string]struct {
		kind textfmt.TrimKind
		want string
	}{
		"none":     {kind: textfmt.TrimNone, want: line},
		"leading":  {kind: textfmt.TrimLeading, want: "Some text \t "},
		"trailing": {kind: textfmt.TrimTrailing, want: " \t Some text"},
		"all":      {kind: textfmt.TrimAll, want: "Some text"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textfmt.TrimLine(line, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrimLineWhitespaceOnly(t *testing.T) {
	t.Parallel()
	got, err := textfmt.TrimLine(" \t  ", textfmt.TrimAll)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTrimLineSeparators(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		line string
		want string
	}{
		"unit separator":   {line: "\x1fabc\x1f", want: "abc"},
		"file separator":   {line: "\x1c\x1d\x1e abc", want: "abc"},
		"no-break space":   {line: "\u00a0abc\u00a0", want: "abc"},
		"ideographic":      {line: "\u3000abc\u3000", want: "abc"},
		"inner kept":       {line: " a\x1fb ", want: "a\x1fb"},
		"control not trim": {line: "\x1babc\x00", want: "\x1babc\x00"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textfmt.TrimLine(tt.line, textfmt.TrimAll)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrimLineInvalid(t *testing.T) {
	t.Parallel()
	_, err := textfmt.TrimLine("x", textfmt.TrimKind(10))
	assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
}

func TestConvertCase(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		line string
		kind textfmt.CaseKind
		want string
	}{
		"upper":       {line: "Hello world!", kind: textfmt.CaseUpper, want: "HELLO WORLD!"},
		"lower":       {line: "Hello World!", kind: textfmt.CaseLower, want: "hello world!"},
		"unset":       {line: "Hello world!", kind: textfmt.CaseUnset, want: "Hello world!"},
		"unset empty": {line: "", kind: textfmt.CaseUnset, want: ""},
		"upper empty": {line: "", kind: textfmt.CaseUpper, want: ""},
		"accents":     {line: "éàü", kind: textfmt.CaseUpper, want: "ÉÀÜ"},
		"sharp s":     {line: "straße", kind: textfmt.CaseUpper, want: "STRASSE"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textfmt.ConvertCase(tt.line, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertCaseInvalid(t *testing.T) {
	t.Parallel()
	_, err := textfmt.ConvertCase("x", textfmt.CaseKind(3))
	assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
}
