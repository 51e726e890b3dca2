/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for remap.
package resolve

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/remap/config"
	"bennypowers.dev/remap/fs"
	"bennypowers.dev/remap/resolver"
)

// Cmd is the resolve cobra command. It resolves a single specifier against
// the active configuration, for debugging root and alias setups.
var Cmd = &cobra.Command{
	Use:   "resolve <specifier>",
	Short: "Resolve a single specifier against the configuration",
	Long: `Resolve one specifier the way the rewrite command would, and print the
result. Useful for checking what a root or alias configuration does.

Examples:
  remap resolve components/button --from src/app/main.js
  remap resolve underscore/map --from src/main.js --format json`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("from", "", "Path of the file containing the specifier (required)")
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	_ = Cmd.MarkFlagRequired("from")
}

// result is the JSON output shape.
type result struct {
	Specifier string `json:"specifier"`
	Rewritten bool   `json:"rewritten"`
	Result    string `json:"result"`
	Path      string `json:"path,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	opts, err := cfg.ResolverOptions(filesystem, ".")
	if err != nil {
		return fmt.Errorf("error expanding roots: %w", err)
	}

	res := resolveOne(filesystem, opts, args[0], from)

	switch format {
	case "json":
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		fmt.Println(res.Result)
	}
	return nil
}

// resolveOne runs a single resolution. An unresolved specifier is not an
// error; the result just carries the input unchanged.
func resolveOne(filesystem fs.FileSystem, opts resolver.Options, spec, from string) result {
	r := resolver.New(filesystem, opts)

	res := result{Specifier: spec, Result: spec}
	if rw := r.Resolve(spec, from); rw != nil {
		res.Rewritten = true
		res.Result = rw.Specifier
		res.Path = rw.Path
	}
	return res
}
