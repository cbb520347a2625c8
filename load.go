// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import "fmt"

// ParseFile parses filename through the process-wide file cache.
//
// I/O failures are returned as wrapped *fs.PathError; parse problems as *ParseError.
func ParseFile(filename string, handler Handler, opts ParseOptions) error {
	return DefaultFileCache().ParseFile(filename, handler, opts)
}

// ParseFile parses filename, reading it through the cache.
func (c *FileCache) ParseFile(filename string, handler Handler, opts ParseOptions) error {
	data, err := c.Load(filename)
	if err != nil {
		return err
	}

	return ParseBytes(data, handler, opts)
}

// ParseFiles parses files in the given order with one handler.
//
// Parsing stops at the first I/O failure. Parse errors do not stop the
// sequence; the first one is returned after all files were parsed.
func (c *FileCache) ParseFiles(handler Handler, opts ParseOptions, filenames ...string) error {
	var firstErr error
	for _, filename := range filenames {
		err := c.ParseFile(filename, handler, opts)
		if err == nil {
			continue
		}

		if !isParseError(err) {
			return err
		}

		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", filename, err)
		}
	}

	return firstErr
}
