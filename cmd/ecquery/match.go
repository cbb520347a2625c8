// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woozymasta/ecconfig"
)

func newMatchCmd(a *app) *cobra.Command {
	var (
		exts     []string
		showExpr bool
	)

	cmd := &cobra.Command{
		Use:   "match [pattern] <path>...",
		Short: "Match slash-separated paths against a section glob",
		Long: `Match slash-separated paths against a section glob.

Without --ext the first argument is the pattern. With --ext the pattern is
built from the extension list and every argument is a path.

Exits with code 1 when any path does not match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pattern string
			if len(exts) > 0 {
				pattern = ecconfig.ExtensionsPattern(exts)
				if pattern == "" {
					return errors.New("--ext lists no usable extension")
				}
			} else {
				if len(args) < 2 {
					return errors.New("requires a pattern and at least one path")
				}
				pattern, args = args[0], args[1:]
			}

			g, err := ecconfig.CompileGlob(pattern)
			if err != nil {
				return fmt.Errorf("compile %q: %w", pattern, err)
			}

			a.logger.Debug("compiled glob", "pattern", g.Pattern(), "expr", g.Expr(), "ranges", len(g.NumberRanges()))

			out := cmd.OutOrStdout()
			if showExpr {
				fmt.Fprintln(out, g.Expr())
			}

			allMatched := true
			for _, path := range args {
				ok, err := g.Match(path)
				if err != nil {
					return fmt.Errorf("match %q: %w", path, err)
				}

				allMatched = allMatched && ok
				fmt.Fprintf(out, "%s\t%t\n", path, ok)
			}

			if !allMatched {
				return errMismatch
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&exts, "ext", nil, "build the pattern from file extensions (comma-separated)")
	cmd.Flags().BoolVar(&showExpr, "expr", false, "print the translated regular expression first")

	return cmd
}
