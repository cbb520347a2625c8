// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// globTranslator rewrites one glob pattern into anchored regexp source.
type globTranslator struct {
	// literalClose holds indices of "}" bytes consumed by a literal "{...}" span.
	literalClose map[int]struct{}
	// pattern is the source glob.
	pattern string
	// out accumulates regexp source.
	out boundedBuilder
	// ranges collects numeric ranges in capture-group order.
	ranges []NumberRange
	// braceLevel counts open alternation groups.
	braceLevel int
	// inClass reports whether translation is inside "[...]".
	inClass bool
	// bracesPaired reports whether braces are balanced across the whole pattern.
	bracesPaired bool
}

// boundedBuilder is a strings.Builder that refuses to grow past limit.
type boundedBuilder struct {
	err   error
	b     strings.Builder
	limit int
}

// compileGlob compiles one pattern without consulting any cache.
func compileGlob(pattern string) (*Glob, error) {
	if len(pattern) > MaxPatternLength {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPatternTooLong, len(pattern), MaxPatternLength)
	}

	src, ranges, err := translateGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("translate %q: %w", pattern, err)
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrEngineRejected, pattern, err)
	}

	if re.NumSubexp() != len(ranges) {
		return nil, fmt.Errorf("%w: %q has %d groups for %d ranges", ErrEngineRejected, pattern, re.NumSubexp(), len(ranges))
	}

	return &Glob{
		pattern: pattern,
		re:      re,
		ranges:  ranges,
	}, nil
}

// translateGlob converts a glob pattern to regexp source and its numeric ranges.
func translateGlob(pattern string) (string, []NumberRange, error) {
	t := &globTranslator{
		pattern:      pattern,
		bracesPaired: bracesPaired(pattern),
	}
	t.out.limit = maxTranslatedLength

	// "." keeps its default of not matching "\n", so "**" stops at newlines.
	t.out.writeString(`^`)
	t.translate()
	t.out.writeString(`$`)

	if t.out.err != nil {
		return "", nil, t.out.err
	}

	return t.out.b.String(), t.ranges, nil
}

// translate walks the pattern byte by byte.
func (t *globTranslator) translate() {
	pat := t.pattern

	for i := 0; i < len(pat) && t.out.err == nil; i++ {
		if t.inClass {
			i = t.translateClassByte(i)
			continue
		}

		c := pat[i]
		switch c {
		case '\\':
			if i+1 < len(pat) {
				i++
				t.out.writeLiteral(pat[i])
			} else {
				t.out.writeString(`\\`)
			}
		case '?':
			t.out.writeString(`[^/]`)
		case '*':
			if i+1 < len(pat) && pat[i+1] == '*' {
				t.out.writeString(`.*`)
				i++
				continue
			}
			t.out.writeString(`[^/]*`)
		case '[':
			i = t.openClass(i)
		case '{':
			i = t.openBrace(i)
		case '}':
			t.closeBrace(i)
		case ',':
			if t.braceLevel > 0 {
				t.out.writeByte('|')
			} else {
				t.out.writeString(`\,`)
			}
		case '/':
			// "/**/" matches a single separator as well as any directory chain.
			if strings.HasPrefix(pat[i:], "/**/") {
				t.out.writeString(`(?:/|/.*/)`)
				i += 3
				continue
			}
			t.out.writeByte('/')
		default:
			t.out.writeLiteral(c)
		}
	}
}

// openClass handles "[" outside a class and returns the last consumed index.
func (t *globTranslator) openClass(start int) int {
	pat := t.pattern

	end, hasSlash := findCharClassEnd(pat, start)
	if hasSlash {
		// A separator inside brackets makes the whole bracket run literal text.
		if end < 0 {
			t.out.writeString(regexp.QuoteMeta(pat[start:]))
			return len(pat) - 1
		}

		t.out.writeString(regexp.QuoteMeta(pat[start : end+1]))
		return end
	}

	if end < 0 {
		t.out.writeString(`\[`)
		return start
	}

	t.inClass = true
	idx := start
	if idx+1 < len(pat) && pat[idx+1] == '!' {
		t.out.writeString(`[^`)
		idx++
	} else {
		t.out.writeByte('[')
	}

	if idx+1 < len(pat) && pat[idx+1] == ']' {
		// Leading ']' is a class member, not the terminator.
		t.out.writeString(`\]`)
		idx++
	}

	return idx
}

// translateClassByte handles one byte inside "[...]" and returns the last consumed index.
func (t *globTranslator) translateClassByte(i int) int {
	pat := t.pattern

	switch c := pat[i]; c {
	case ']':
		t.inClass = false
		t.out.writeByte(']')
	case '-':
		t.out.writeByte('-')
	case '\\':
		if i+1 < len(pat) {
			i++
			t.out.writeLiteral(pat[i])
		} else {
			t.out.writeString(`\\`)
		}
	default:
		t.out.writeLiteral(c)
	}

	return i
}

// openBrace handles "{" and returns the last consumed index.
func (t *globTranslator) openBrace(start int) int {
	if !t.bracesPaired {
		t.out.writeString(`\{`)
		return start
	}

	end, single := findSingleBraceEnd(t.pattern, start)
	if !single {
		t.braceLevel++
		t.out.writeString(`(?:`)
		return start
	}

	if r, ok := parseNumberRange(t.pattern[start : end+1]); ok {
		t.ranges = append(t.ranges, r)
		t.out.writeString(numberCaptureExpr)
		return end
	}

	// "{single}" stays literal, including its closing brace.
	if t.literalClose == nil {
		t.literalClose = make(map[int]struct{}, 1)
	}
	t.literalClose[end] = struct{}{}
	t.out.writeString(`\{`)

	return start
}

// closeBrace handles "}" at index i.
func (t *globTranslator) closeBrace(i int) {
	_, literal := t.literalClose[i]
	if !t.bracesPaired || literal || t.braceLevel == 0 {
		t.out.writeString(`\}`)
		return
	}

	t.braceLevel--
	t.out.writeByte(')')
}

// bracesPaired reports whether unescaped braces balance across the whole pattern.
func bracesPaired(pattern string) bool {
	open := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if i+1 < len(pattern) {
				i++
			}
		case '{':
			open++
		case '}':
			open--
			if open < 0 {
				return false
			}
		}
	}

	return open == 0
}

// findSingleBraceEnd locates the first unescaped "}" after start.
// single is false when a "," comes first or no "}" exists.
func findSingleBraceEnd(pattern string, start int) (end int, single bool) {
	for i := start + 1; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if i+1 < len(pattern) {
				i++
			}
		case ',':
			return -1, false
		case '}':
			return i, true
		}
	}

	return -1, false
}

// findCharClassEnd locates closing bracket for a glob char class and reports
// whether an unescaped "/" appears before it. end is -1 when no bracket closes the class.
func findCharClassEnd(pattern string, start int) (end int, hasSlash bool) {
	idx := start + 1
	if idx < len(pattern) && pattern[idx] == '!' {
		idx++
	}

	if idx < len(pattern) && pattern[idx] == ']' {
		idx++
	}

	for ; idx < len(pattern); idx++ {
		switch pattern[idx] {
		case '\\':
			if idx+1 < len(pattern) {
				idx++
			}
		case '/':
			hasSlash = true
		case ']':
			return idx, hasSlash
		}
	}

	return -1, hasSlash
}

// writeString appends s unless the limit would be exceeded.
func (b *boundedBuilder) writeString(s string) {
	if b.err != nil {
		return
	}

	if b.b.Len()+len(s) > b.limit {
		b.err = ErrBufferExceeded
		return
	}

	b.b.WriteString(s)
}

// writeByte appends one raw byte unless the limit would be exceeded.
func (b *boundedBuilder) writeByte(c byte) {
	if b.err != nil {
		return
	}

	if b.b.Len()+1 > b.limit {
		b.err = ErrBufferExceeded
		return
	}

	b.b.WriteByte(c)
}

// writeLiteral appends one pattern byte matched literally.
// ASCII punctuation is escaped; alphanumerics and UTF-8 bytes pass through.
func (b *boundedBuilder) writeLiteral(c byte) {
	if c >= utf8.RuneSelf || isASCIIAlnum(c) {
		b.writeByte(c)
		return
	}

	b.writeByte('\\')
	b.writeByte(c)
}

// isASCIIAlnum reports whether c is an ASCII letter or digit.
func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
