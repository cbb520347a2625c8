// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"errors"
	"fmt"
)

// Sentinel errors for ecconfig operations.
var (
	// ErrPatternTooLong indicates glob pattern longer than MaxPatternLength.
	ErrPatternTooLong = errors.New("pattern too long")
	// ErrBufferExceeded indicates translated expression outgrew its length bound.
	ErrBufferExceeded = errors.New("translated pattern exceeds buffer")
	// ErrEngineRejected indicates the regexp engine refused the translated pattern.
	ErrEngineRejected = errors.New("pattern rejected by regexp engine")
	// ErrMatchFailed indicates match-time failure distinct from "no match".
	ErrMatchFailed = errors.New("match failed")
	// ErrSyntax indicates a malformed configuration line.
	ErrSyntax = errors.New("syntax error")
	// ErrRejected indicates the handler refused a property.
	ErrRejected = errors.New("property rejected by handler")
	// ErrCacheClosed indicates use of a closed FileCache.
	ErrCacheClosed = errors.New("file cache is closed")
	// ErrInvalidConfigFileName indicates invalid Resolver config file name.
	ErrInvalidConfigFileName = errors.New("invalid config file name")
)

// ParseError reports the first offending line of a parse run.
type ParseError struct {
	// Err is ErrSyntax or ErrRejected.
	Err error
	// Line is the 1-based physical line number.
	Line int
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying reason.
func (e *ParseError) Unwrap() error {
	return e.Err
}
