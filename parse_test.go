// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type property struct {
	section string
	name    string
	value   string
}

// collect returns a handler recording every property into out.
func collect(out *[]property) Handler {
	return func(section, name, value string) bool {
		*out = append(*out, property{section: section, name: name, value: value})
		return true
	}
}

func TestParseString(t *testing.T) {
	t.Parallel()

	var got []property
	err := ParseString(`; comment
# another comment
root = true

[*]
indent_style = space
indent_size=4 ; trailing comment
end_of_line = lf # trailing hash

[*.md]
trim_trailing_whitespace:false
`, collect(&got))
	require.NoError(t, err)

	assert.Equal(t, []property{
		{"", "root", "true"},
		{"*", "indent_style", "space"},
		{"*", "indent_size", "4"},
		{"*", "end_of_line", "lf"},
		{"*.md", "trim_trailing_whitespace", "false"},
	}, got)
}

func TestParseContinuesAfterSyntaxError(t *testing.T) {
	t.Parallel()

	var got []property
	err := ParseString("[*]\na = 1\nbogus line\nb = 2\n", collect(&got))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
	require.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, "line 3: syntax error", err.Error())

	assert.Equal(t, []property{{"*", "a", "1"}, {"*", "b", "2"}}, got)
}

func TestParseReportsFirstErrorOnly(t *testing.T) {
	t.Parallel()

	var seen []string
	handler := func(_, name, _ string) bool {
		seen = append(seen, name)
		return name != "bad"
	}

	err := ParseString("ok = 1\n[unclosed\nbad = 2\nlast = 3\n", handler)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	require.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, []string{"ok", "bad", "last"}, seen)
}

func TestParseHandlerRejection(t *testing.T) {
	t.Parallel()

	count := 0
	err := ParseString("a = 1\nb = 2\nc = 3\n", func(_, name, _ string) bool {
		count++
		return name != "b"
	})

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, 3, count)
}

func TestParseSectionHeaders(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src     string
		section string
	}{
		{"[*.py] ; python files\nk = v\n", "*.py"},
		{"[[ab].c]\nk = v\n", "[ab].c"},
		{"[a\\]]\nk = v\n", `a\]`},
		{"[dir\\\\]\nk = v\n", `dir\\`},
		{"[a\\]b]\nk = v\n", `a\]b`},
		{"[]\nk = v\n", ""},
		{"[a;b]\nk = v\n", "a;b"},
		{"  [indented]\nk = v\n", "indented"},
	}

	for _, tc := range cases {
		var got []property
		require.NoError(t, ParseString(tc.src, collect(&got)), tc.src)
		require.Len(t, got, 1, tc.src)
		assert.Equal(t, tc.section, got[0].section, tc.src)
	}
}

func TestParseEscapedBracketOnlyIsSyntaxError(t *testing.T) {
	t.Parallel()

	var got []property
	err := ParseString("[*]\n[foo\\]\nk = v\n", collect(&got))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, []property{{"*", "k", "v"}}, got)
}

func TestParseMissingSectionBracket(t *testing.T) {
	t.Parallel()

	var got []property
	err := ParseString("[*]\na = 1\n[abc\nb = 2\n", collect(&got))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)

	// Section is left unchanged by the malformed header.
	assert.Equal(t, []property{{"*", "a", "1"}, {"*", "b", "2"}}, got)
}

func TestParseSkipsOversizedEntries(t *testing.T) {
	t.Parallel()

	longSection := strings.Repeat("s", MaxSectionNameLength+1)
	longName := strings.Repeat("n", MaxPropertyNameLength+1)
	longValue := strings.Repeat("v", MaxPropertyValueLength+1)
	maxName := strings.Repeat("n", MaxPropertyNameLength)
	maxValue := strings.Repeat("v", MaxPropertyValueLength)

	src := strings.Join([]string{
		"[*]",
		"[" + longSection + "]",
		"kept = 1",
		longName + " = x",
		"y = " + longValue,
		maxName + " = " + maxValue,
	}, "\n")

	var got []property
	require.NoError(t, ParseString(src, collect(&got)))
	assert.Equal(t, []property{
		{"*", "kept", "1"},
		{"*", maxName, maxValue},
	}, got)
}

func TestParseValueEdgeCases(t *testing.T) {
	t.Parallel()

	var got []property
	err := ParseString("url = http://x;y\nhash = a#b\ncolon: c\nmixed:key = v\nempty =\ncrlf = z\r\n", collect(&got))
	require.NoError(t, err)

	assert.Equal(t, []property{
		{"", "url", "http://x;y"},
		{"", "hash", "a#b"},
		{"", "colon", "c"},
		{"", "mixed:key", "v"},
		{"", "empty", ""},
		{"", "crlf", "z"},
	}, got)
}

func TestParseCommentBeforeSeparatorIsSyntaxError(t *testing.T) {
	t.Parallel()

	var got []property
	err := ParseString("name ;x = y\n", collect(&got))
	require.ErrorIs(t, err, ErrSyntax)
	assert.Empty(t, got)
}

func TestParseSkipsBOM(t *testing.T) {
	t.Parallel()

	var got []property
	require.NoError(t, ParseString("\xef\xbb\xbfroot = true\n", collect(&got)))
	assert.Equal(t, []property{{"", "root", "true"}}, got)
}

func TestParseTruncatesLongLines(t *testing.T) {
	t.Parallel()

	var got []property
	err := ParseString(strings.Repeat("x", MaxLineLength+100)+"=v\nok = 1\n", collect(&got))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
	assert.Equal(t, []property{{"", "ok", "1"}}, got)
}

func TestParseMultiline(t *testing.T) {
	t.Parallel()

	src := "[*]\nkey = a\n  b\n\tc\n[x]\n  orphan\n"

	var got []property
	err := ParseBytes([]byte(src), collect(&got), ParseOptions{AllowMultiline: true})

	// A new section clears the previous name, so "orphan" is a syntax error.
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 6, pe.Line)

	assert.Equal(t, []property{
		{"*", "key", "a"},
		{"*", "key", "b"},
		{"*", "key", "c"},
	}, got)
}

func TestParseIndentedLinesWithoutMultiline(t *testing.T) {
	t.Parallel()

	var got []property
	err := ParseString("key = a\n  b\n  other = c\n", collect(&got))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, []property{{"", "key", "a"}, {"", "other", "c"}}, got)
}

func TestParseRoundTripsSimplePairs(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"indent_style", "tab"},
		{"charset", "utf-8"},
		{"max_line_length", "120"},
		{"spaced name", "spaced value"},
		{"k", "a=b"},
	}

	for _, pair := range pairs {
		for _, sep := range []string{"=", " = ", "\t=\t", ":"} {
			if sep == ":" && strings.Contains(pair[1], "=") {
				continue
			}

			var got []property
			line := "  " + pair[0] + sep + pair[1] + "  "
			require.NoError(t, ParseString(line, collect(&got)), line)
			require.Len(t, got, 1, line)
			assert.Equal(t, pair[0], got[0].name, line)
			assert.Equal(t, pair[1], got[0].value, line)
		}
	}
}

func TestParseReaderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := Parse(iotest.ErrReader(boom), collect(new([]property)), ParseOptions{})
	require.ErrorIs(t, err, boom)

	var pe *ParseError
	assert.False(t, errors.As(err, &pe))
}

func TestParseReader(t *testing.T) {
	t.Parallel()

	var got []property
	require.NoError(t, Parse(strings.NewReader("[*.go]\nindent_style = tab"), collect(&got), ParseOptions{}))
	assert.Equal(t, []property{{"*.go", "indent_style", "tab"}}, got)
}
