// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

// Command ecquery inspects EditorConfig files: it dumps parsed properties,
// tests glob patterns and resolves the effective properties of files.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
