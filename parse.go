// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// asciiSpace is the whitespace set trimmed around lines, names and values.
const asciiSpace = " \t\n\v\f\r"

// utf8BOM is skipped at the start of the first line.
const utf8BOM = "\xef\xbb\xbf"

// parserState is per-run parser state.
type parserState struct {
	handler  Handler
	section  string
	prevName string
	opts     ParseOptions
	// errLine is the first offending line, 0 when none.
	errLine int
	errKind error
}

// ParseBytes parses configuration text and delivers every property to handler.
//
// Semantics:
// - lines starting with ";" or "#" are comments
// - "[pattern]" starts a section; the name ends at the last "]" before a comment
// - "name = value" or "name : value" defines a property; " ;" and " #" start a trailing comment
// - oversized section names, property names and values are skipped silently
//
// Parsing never stops early. The first syntax error or handler rejection is
// returned as *ParseError once all lines have been processed.
func ParseBytes(data []byte, handler Handler, opts ParseOptions) error {
	st := &parserState{
		handler: handler,
		opts:    opts,
	}

	lineno := 0
	for raw := range bytes.Lines(data) {
		lineno++

		line := string(bytes.TrimSuffix(raw, []byte{'\n'}))
		if len(line) > MaxLineLength-1 {
			line = line[:MaxLineLength-1]
		}

		if lineno == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		st.parseLine(lineno, line)
	}

	if st.errLine != 0 {
		return &ParseError{Line: st.errLine, Err: st.errKind}
	}

	return nil
}

// Parse reads configuration text from r and parses it.
func Parse(r io.Reader, handler Handler, opts ParseOptions) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	return ParseBytes(data, handler, opts)
}

// ParseString parses configuration text with default options.
func ParseString(src string, handler Handler) error {
	return ParseBytes([]byte(src), handler, ParseOptions{})
}

// parseLine classifies and handles one physical line.
func (st *parserState) parseLine(lineno int, line string) {
	line = strings.TrimRight(line, asciiSpace)
	start := strings.TrimLeft(line, asciiSpace)
	indented := len(start) < len(line)

	switch {
	case start == "":
		return
	case start[0] == ';' || start[0] == '#':
		return
	case st.opts.AllowMultiline && indented && st.prevName != "":
		// Indented line continues the previous property value.
		st.deliver(lineno, st.prevName, start)
	case start[0] == '[':
		st.parseSection(lineno, start)
	default:
		st.parseProperty(lineno, start)
	}
}

// parseSection handles a "[section]" line.
func (st *parserState) parseSection(lineno int, start string) {
	end := findLastCharOrComment(start, 1, ']')
	if end < 0 {
		st.fail(lineno, ErrSyntax)
		return
	}

	name := start[1:end]
	if len(name) > MaxSectionNameLength {
		return
	}

	st.section = name
	st.prevName = ""
}

// parseProperty handles a "name = value" line.
func (st *parserState) parseProperty(lineno int, start string) {
	sep := findCharOrComment(start, '=')
	if sep == len(start) || start[sep] != '=' {
		sep = findCharOrComment(start, ':')
	}

	if sep == len(start) || (start[sep] != '=' && start[sep] != ':') {
		st.fail(lineno, ErrSyntax)
		return
	}

	name := strings.TrimRight(start[:sep], asciiSpace)
	value := strings.TrimLeft(start[sep+1:], asciiSpace)
	value = strings.TrimRight(value[:findCharOrComment(value, 0)], asciiSpace)

	if len(name) > MaxPropertyNameLength || len(value) > MaxPropertyValueLength {
		return
	}

	st.prevName = name
	st.deliver(lineno, name, value)
}

// deliver hands one property to the handler.
func (st *parserState) deliver(lineno int, name string, value string) {
	if !st.handler(st.section, name, value) {
		st.fail(lineno, ErrRejected)
	}
}

// fail records the first offending line.
func (st *parserState) fail(lineno int, kind error) {
	if st.errLine != 0 {
		return
	}

	st.errLine = lineno
	st.errKind = kind
}

// findCharOrComment returns index of first c or comment marker in s, or len(s).
// A ";" or "#" starts a comment only right after whitespace. c == 0 finds comments only.
func findCharOrComment(s string, c byte) int {
	wasSpace := false
	for i := 0; i < len(s); i++ {
		if c != 0 && s[i] == c {
			return i
		}

		if wasSpace && (s[i] == ';' || s[i] == '#') {
			return i
		}

		wasSpace = isASCIISpace(s[i])
	}

	return len(s)
}

// findLastCharOrComment returns index of last unescaped c in s[from:] before
// any comment marker, or -1. A backslash escapes exactly the next byte.
func findLastCharOrComment(s string, from int, c byte) int {
	last := -1
	wasSpace := false
	for i := from; i < len(s); i++ {
		if wasSpace && (s[i] == ';' || s[i] == '#') {
			break
		}

		if s[i] == '\\' {
			i++
			wasSpace = false
			continue
		}

		if s[i] == c {
			last = i
		}

		wasSpace = isASCIISpace(s[i])
	}

	return last
}

// isASCIISpace reports whether b is C-locale whitespace.
func isASCIISpace(b byte) bool {
	return strings.IndexByte(asciiSpace, b) >= 0
}
