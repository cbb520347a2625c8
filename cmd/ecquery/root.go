// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/woozymasta/ecconfig"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// errMismatch reports a query that ran but answered negatively.
var errMismatch = errors.New("no match")

// app holds state shared by subcommands.
type app struct {
	logger  *log.Logger
	files   *ecconfig.FileCache
	verbose bool
}

// run executes the CLI and returns the process exit code.
func run(args []string) int {
	return execute(args, os.Stdout, os.Stderr)
}

// execute runs the root command with explicit streams.
//
// Exit codes: 0 success, 1 negative match answer, 2 any other failure.
func execute(args []string, stdout io.Writer, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "ecquery",
	})

	a := &app{
		logger: logger,
		files:  ecconfig.NewFileCache(ecconfig.FileCacheOptions{Logger: logger}),
	}
	defer func() {
		if err := a.files.Close(); err != nil {
			logger.Warn("close file cache", "err", err)
		}
	}()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errMismatch):
		return 1
	default:
		logger.Error(err.Error())
		return 2
	}
}

// newRootCmd builds the command tree.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "ecquery",
		Short:         "Inspect EditorConfig files and section globs",
		Version:       getVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newParseCmd(a))
	root.AddCommand(newMatchCmd(a))
	root.AddCommand(newPropsCmd(a))

	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}

	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
