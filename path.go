// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// errEmptyFilename rejects blank file names before touching the filesystem.
var errEmptyFilename = errors.New("empty file name")

// cacheKey normalizes filename to the absolute clean path used as FileCache key.
func cacheKey(filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", fmt.Errorf("load config file: %w", errEmptyFilename)
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", filename, err)
	}

	return abs, nil
}

// RelativeCandidate converts target into the slash-separated candidate path
// MatchGlob expects for sections of the config file in configDir.
//
// ok is false when target is not inside configDir.
func RelativeCandidate(configDir string, target string) (candidate string, ok bool) {
	rel, err := filepath.Rel(configDir, target)
	if err != nil {
		return "", false
	}

	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return filepath.ToSlash(rel), true
}

// isParseError reports whether err carries a *ParseError.
func isParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
