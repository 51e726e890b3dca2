/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for remap.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/remap/cmd/resolve"
	"bennypowers.dev/remap/cmd/rewrite"
	"bennypowers.dev/remap/cmd/roots"
	"bennypowers.dev/remap/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "remap",
	Short: "Rewrite bare module specifiers into loader-resolvable paths",
	Long: `remap rewrites bare module specifiers found in JavaScript and HTML sources
into paths a plain module loader can resolve, based on configured virtual
root directories and a static alias table.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(rewrite.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(roots.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
