package textfmt_test

import (
	"testing"

	"github.com/bjaus/textfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allNewlines = []textfmt.NewlineKind{
	textfmt.NewlineCR,
	textfmt.NewlineCRLF,
	textfmt.NewlineLF,
	textfmt.NewlineSpace,
	textfmt.NewlineRemove,
}

func TestNewlineRoundTrip(t *testing.T) {
	t.Parallel()
	for _, k := range allNewlines {
		t.Run(k.String(), func(t *testing.T) {
			t.Parallel()
			text, err := k.MarshalText()
			require.NoError(t, err)
			got, ok := textfmt.ParseNewline(string(text))
			assert.True(t, ok)
			assert.Equal(t, k, got)
		})
	}
}

func TestNewlineMarshalText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		kind textfmt.NewlineKind
		want string
	}{
		"cr":     {kind: textfmt.NewlineCR, want: `\r`},
		"crlf":   {kind: textfmt.NewlineCRLF, want: `\r\n`},
		"lf":     {kind: textfmt.NewlineLF, want: `\n`},
		"space":  {kind: textfmt.NewlineSpace, want: "space"},
		"remove": {kind: textfmt.NewlineRemove, want: "remove"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.kind.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestNewlineMarshalTextInvalid(t *testing.T) {
	t.Parallel()
	for _, k := range []textfmt.NewlineKind{textfmt.NewlineUnset, textfmt.NewlineKind(42)} {
		_, err := k.MarshalText()
		assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
	}
}

func TestParseNewline(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  textfmt.NewlineKind
		ok    bool
	}{
		"escaped crlf":  {input: `\r\n`, want: textfmt.NewlineCRLF, ok: true},
		"raw crlf":      {input: "\r\n", want: textfmt.NewlineCRLF, ok: true},
		"raw lf":        {input: "\n", want: textfmt.NewlineLF, ok: true},
		"raw cr":        {input: "\r", want: textfmt.NewlineCR, ok: true},
		"space":         {input: "space", want: textfmt.NewlineSpace, ok: true},
		"remove":        {input: "remove", want: textfmt.NewlineRemove, ok: true},
		"literal space": {input: " ", want: textfmt.NewlineUnset, ok: false},
		"upper word":    {input: "SPACE", want: textfmt.NewlineUnset, ok: false},
		"tab":           {input: `\t`, want: textfmt.NewlineUnset, ok: false},
		"escaped lf cr": {input: `\n\r`, want: textfmt.NewlineUnset, ok: false},
		"empty":         {input: "", want: textfmt.NewlineUnset, ok: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := textfmt.ParseNewline(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewlineJoinerAndFileEOL(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		kind   textfmt.NewlineKind
		joiner string
		eol    string
		hasEOL bool
	}{
		"cr":     {kind: textfmt.NewlineCR, joiner: "\r", eol: "\r", hasEOL: true},
		"crlf":   {kind: textfmt.NewlineCRLF, joiner: "\r\n", eol: "\r\n", hasEOL: true},
		"lf":     {kind: textfmt.NewlineLF, joiner: "\n", eol: "\n", hasEOL: true},
		"space":  {kind: textfmt.NewlineSpace, joiner: " "},
		"remove": {kind: textfmt.NewlineRemove, joiner: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			joiner, err := tt.kind.Joiner()
			require.NoError(t, err)
			assert.Equal(t, tt.joiner, joiner)
			eol, ok := tt.kind.FileEOL()
			assert.Equal(t, tt.hasEOL, ok)
			assert.Equal(t, tt.eol, eol)
		})
	}
}

func TestNewlineJoinerInvalid(t *testing.T) {
	t.Parallel()
	_, err := textfmt.NewlineUnset.Joiner()
	assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
	_, ok := textfmt.NewlineKind(-1).FileEOL()
	assert.False(t, ok)
}

func TestNewlineString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "CRLF", textfmt.NewlineCRLF.String())
	assert.Equal(t, "NewlineKind(99)", textfmt.NewlineKind(99).String())
}

func TestTrimRoundTrip(t *testing.T) {
	t.Parallel()
	for _, k := range []textfmt.TrimKind{textfmt.TrimNone, textfmt.TrimLeading, textfmt.TrimTrailing, textfmt.TrimAll} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		got, ok := textfmt.ParseTrim(string(text))
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, err := textfmt.TrimKind(7).MarshalText()
	assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
	got, ok := textfmt.ParseTrim("both")
	assert.False(t, ok)
	assert.Equal(t, textfmt.TrimNone, got)
}

func TestCaseRoundTrip(t *testing.T) {
	t.Parallel()
	for _, k := range []textfmt.CaseKind{textfmt.CaseLower, textfmt.CaseUpper} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		got, ok := textfmt.ParseCase(string(text))
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, err := textfmt.CaseUnset.MarshalText()
	assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
	got, ok := textfmt.ParseCase("title")
	assert.False(t, ok)
	assert.Equal(t, textfmt.CaseUnset, got)
}

func TestBlankLinesRoundTrip(t *testing.T) {
	t.Parallel()
	for _, k := range []textfmt.BlankLineKind{textfmt.BlankLinesRemove, textfmt.BlankLinesCollapse} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		got, ok := textfmt.ParseBlankLines(string(text))
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, err := textfmt.BlankLinesUnset.MarshalText()
	assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
	got, ok := textfmt.ParseBlankLines("squash")
	assert.False(t, ok)
	assert.Equal(t, textfmt.BlankLinesUnset, got)
}

func TestTabsRoundTrip(t *testing.T) {
	t.Parallel()
	for _, k := range []textfmt.TabKind{textfmt.TabsToSpaces, textfmt.SpacesToTabs, textfmt.TabsExpand} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		got, ok := textfmt.ParseTabs(string(text))
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, err := textfmt.TabsUnset.MarshalText()
	assert.ErrorIs(t, err, textfmt.ErrInvalidArgument)
}

func TestKindValid(t *testing.T) {
	t.Parallel()
	assert.True(t, textfmt.TrimNone.Valid())
	assert.False(t, textfmt.TrimKind(-1).Valid())
	assert.False(t, textfmt.CaseUnset.Valid())
	assert.True(t, textfmt.CaseUpper.Valid())
	assert.False(t, textfmt.BlankLinesUnset.Valid())
	assert.False(t, textfmt.NewlineUnset.Valid())
	assert.True(t, textfmt.NewlineRemove.Valid())
	assert.False(t, textfmt.TabsUnset.Valid())
}
