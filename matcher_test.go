// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"regexp"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern   string
		candidate string
		want      bool
	}{
		{"*.txt", "file.txt", true},
		{"*.txt", "dir/file.txt", false},
		{"**/*.txt", "a/b/file.txt", true},
		{"**.txt", "a/b/file.txt", true},
		{"?.c", "a.c", true},
		{"?.c", "/.c", false},
		{"?.c", "ab.c", false},
		{"{1..5}", "3", true},
		{"{1..5}", "6", false},
		{"{1..5}", "03", false},
		{"{1..5}", "+3", true},
		{"{-3..3}", "-2", true},
		{"{-3..3}", "0", true},
		{"{-3..3}", "-4", false},
		{"{a,b,c}", "b", true},
		{"{a,b,c}", "d", false},
		{"*.{js,py}", "main.py", true},
		{"*.{js,py}", "main.rb", false},
		{"{a,b}{1..3}", "b2", true},
		{"{a,b}{1..3}", "c2", false},
		{"a{1..3}b{10..20}", "a2b15", true},
		{"a{1..3}b{10..20}", "a2b25", false},
		{"a{1..3}b{10..20}", "a4b15", false},
		{"{a,{1..3}}", "a", true},
		{"{a,{1..3}}", "2", true},
		{"{a,{1..3}}", "4", false},
		{"[!abc]", "d", true},
		{"[!abc]", "a", false},
		{"[a-c]x", "bx", true},
		{"[a-c]x", "dx", false},
		{"[]a]", "]", true},
		{"[a/b]c", "[a/b]c", true},
		{"[a/b]c", "ac", false},
		{"[abc", "[abc", true},
		{"a{b", "a{b", true},
		{"a{b", "ab", false},
		{"{single}", "{single}", true},
		{"{single}", "single", false},
		{"{}", "{}", true},
		{"a,b", "a,b", true},
		{"a/**/b", "a/b", true},
		{"a/**/b", "a/x/y/b", true},
		{"a/**/b", "ab", false},
		{`\*.txt`, "*.txt", true},
		{`\*.txt`, "a.txt", false},
		{`ab\`, `ab\`, true},
		{"file-name.md", "file-name.md", true},
		{"dots.in.name", "dotsXinXname", false},
		{"ünï*", "ünïcode", true},
		{"a**b", "a\nb", false},
		{"a*b", "a\nb", true},
		{"a?b", "a\nb", true},
	}

	for _, tc := range cases {
		got, err := MatchGlob(tc.pattern, tc.candidate)
		require.NoError(t, err, "MatchGlob(%q, %q)", tc.pattern, tc.candidate)
		assert.Equal(t, tc.want, got, "MatchGlob(%q, %q)", tc.pattern, tc.candidate)
	}
}

func TestGlobMatchUnbalancedBracesAreLiteral(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern   string
		candidate string
		want      bool
	}{
		{"{a,b", "{a,b", true},
		{"{a,b", "a", false},
		{"a}{1..3}", "a}{1..3}", true},
		{"a}{1..3}", "a}2", false},
		{"{1..3}}", "{1..3}}", true},
	}

	for _, tc := range cases {
		got, err := MatchGlob(tc.pattern, tc.candidate)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "MatchGlob(%q, %q)", tc.pattern, tc.candidate)
	}
}

func TestGlobMatchAgreesWithDoublestar(t *testing.T) {
	t.Parallel()

	// Brace-free and range-free patterns share semantics with doublestar.
	patterns := []string{
		"*.go",
		"src/*.go",
		"src/**/*.go",
		"[a-c].txt",
		"file?.md",
		"[!x]y",
		"docs/*/index.md",
	}

	candidates := []string{
		"main.go",
		"src/main.go",
		"src/a/b/main.go",
		"a.txt",
		"d.txt",
		"file1.md",
		"file12.md",
		"zy",
		"xy",
		"docs/a/index.md",
		"docs/index.md",
		"docs/a/b/index.md",
	}

	for _, pattern := range patterns {
		g, err := CompileGlob(pattern)
		require.NoError(t, err)

		for _, candidate := range candidates {
			want, err := doublestar.Match(pattern, candidate)
			require.NoError(t, err)

			got, err := g.Match(candidate)
			require.NoError(t, err)
			assert.Equal(t, want, got, "pattern %q candidate %q", pattern, candidate)
		}
	}
}

func TestGlobAccessors(t *testing.T) {
	t.Parallel()

	g, err := NewGlobCache().Compile("img{1..9}.png")
	require.NoError(t, err)

	assert.Equal(t, "img{1..9}.png", g.Pattern())
	assert.Equal(t, `^img([+\-]?\d+)\.png$`, g.Expr())

	ranges := g.NumberRanges()
	require.Equal(t, []NumberRange{{Min: 1, Max: 9}}, ranges)

	// Returned slice is a copy.
	ranges[0].Max = 100
	ok, err := g.Match("img50.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGlobMatchReportsInconsistentEntry(t *testing.T) {
	t.Parallel()

	c := NewGlobCache()
	c.Store("broken", regexp.MustCompile(`^(\d+)$`), []NumberRange{{Min: 0, Max: 9}, {Min: 0, Max: 9}})

	_, err := c.Match("broken", "5")
	require.ErrorIs(t, err, ErrMatchFailed)
}

func TestMatchGlobPropagatesCompileError(t *testing.T) {
	t.Parallel()

	ok, err := NewGlobCache().Match("\xff", "x")
	require.ErrorIs(t, err, ErrEngineRejected)
	assert.False(t, ok)
}
