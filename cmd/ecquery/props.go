// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woozymasta/ecconfig"
)

func newPropsCmd(a *app) *cobra.Command {
	var (
		configName string
		multiline  bool
	)

	cmd := &cobra.Command{
		Use:   "props <file>...",
		Short: "Print effective EditorConfig properties of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ecconfig.NewResolver(ecconfig.ResolverOptions{
				ConfigFileName: configName,
				Files:          a.files,
				ParseOptions:   ecconfig.ParseOptions{AllowMultiline: multiline},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, target := range args {
				if a.verbose {
					files, err := r.ConfigFiles(target)
					if err != nil {
						return err
					}
					a.logger.Debug("config chain", "file", target, "configs", files)
				}

				props, err := r.Properties(target)
				if err != nil {
					return err
				}

				if len(args) > 1 {
					fmt.Fprintf(out, "[%s]\n", target)
				}

				for _, p := range props {
					fmt.Fprintf(out, "%s=%s\n", p.Name, p.Value)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configName, "config-name", "f", "", "config file name looked up per directory (default \".editorconfig\")")
	cmd.Flags().BoolVarP(&multiline, "multiline", "m", false, "treat indented lines as value continuations")

	return cmd
}
