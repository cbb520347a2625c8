// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionsPattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "*.{go,md,yml,cfg}", ExtensionsPattern([]string{
		"go",
		".MD",
		"*.yml",
		" ..cfg  ",
		"go",
		"",
		"   ",
	}))
	assert.Equal(t, "*.go", ExtensionsPattern([]string{".go"}))
	assert.Empty(t, ExtensionsPattern(nil))
	assert.Equal(t, `*.{a\,b,c\*}`, ExtensionsPattern([]string{"a,b", "c*"}))
}

func TestExtensionsPatternMatches(t *testing.T) {
	t.Parallel()

	g, err := NewGlobCache().Compile(ExtensionsPattern([]string{"go", "a,b"}))
	require.NoError(t, err)

	for candidate, want := range map[string]bool{
		"main.go":   true,
		"x.a,b":     true,
		"x.a":       false,
		"dir/x.go":  false,
		"main.gone": false,
	} {
		got, err := g.Match(candidate)
		require.NoError(t, err)
		assert.Equal(t, want, got, candidate)
	}
}
