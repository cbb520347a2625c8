// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woozymasta/ecconfig"
)

func newParseCmd(a *app) *cobra.Command {
	var multiline bool

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Print every property of config files as section, name and value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			handler := func(section, name, value string) bool {
				_, err := fmt.Fprintf(out, "[%s]\t%s\t%s\n", section, name, value)
				return err == nil
			}

			return a.files.ParseFiles(handler, ecconfig.ParseOptions{AllowMultiline: multiline}, args...)
		},
	}

	cmd.Flags().BoolVarP(&multiline, "multiline", "m", false, "treat indented lines as value continuations")

	return cmd
}
