// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

// Package ecconfig implements the two engines behind EditorConfig-style per-file configuration:
// a glob-to-regexp compiler for section patterns and a line-oriented key/value parser
// backed by a self-invalidating file content cache.
//
// Glob flow:
//   - compile a section pattern (`CompileGlob`), memoized process-wide in `DefaultGlobCache`
//   - match candidate paths (`MatchGlob` / `Glob.Match`), including `{int..int}` range checks
//
// Supported glob syntax:
//   - "*" matches any run of non-separator bytes, "**" matches anything but a newline
//   - "?" matches one non-separator byte
//   - "[abc]", "[a-z]", "[!abc]" character classes (brackets holding "/" are literal)
//   - "{a,b,c}" alternation, "{1..10}" signed numeric ranges without zero padding
//   - "/**/" matches one separator or any directory chain
//   - "\x" escapes x
//
// Parse flow:
//   - parse text (`ParseString` / `Parse` / `ParseBytes`) or a file (`ParseFile`)
//   - every accepted "name = value" pair is delivered to a `Handler` with its section
//   - the first syntax error or handler rejection is reported as `*ParseError` after
//     the whole input has been scanned
//
// File contents are served by `FileCache`, which watches each loaded file and drops
// the entry (and calls the `OnInvalidate` callback) when the file changes on disk.
//
// Resolve flow:
//   - `Resolver.Properties` walks from the target's directory up to the first
//     ".editorconfig" declaring "root = true"
//   - sections whose pattern matches the target path are applied outermost first,
//     later values replacing earlier ones (`MergeProperties`)
package ecconfig
