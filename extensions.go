// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"slices"
	"strings"
)

// globMeta lists bytes escaped by ExtensionsPattern.
const globMeta = `\*?[]{},`

// ExtensionsPattern builds a section glob matching file names with any of exts.
//
// Accepted extension forms:
//   - "go"
//   - ".go"
//   - "*.go"
//
// Empty values and duplicates are skipped. Extensions are lower-cased and
// glob metacharacters in them are escaped. It returns "" when nothing is left,
// "*.go" for one extension and "*.{go,md}" for several.
func ExtensionsPattern(exts []string) string {
	seen := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = escapeGlob(strings.ToLower(ext))
		if ext == "" || slices.Contains(seen, ext) {
			continue
		}

		seen = append(seen, ext)
	}

	switch len(seen) {
	case 0:
		return ""
	case 1:
		return "*." + seen[0]
	default:
		return "*.{" + strings.Join(seen, ",") + "}"
	}
}

// escapeGlob backslash-escapes glob metacharacters in s.
func escapeGlob(s string) string {
	if !strings.ContainsAny(s, globMeta) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(globMeta, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}

	return b.String()
}
