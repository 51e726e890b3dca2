/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package roots provides the roots command for remap.
package roots

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/remap/config"
	"bennypowers.dev/remap/fs"
	"bennypowers.dev/remap/resolver"
)

// Cmd is the roots cobra command. It shows the post-expansion resolver
// configuration, so users can see what their glob patterns expanded to.
var Cmd = &cobra.Command{
	Use:   "roots",
	Short: "Print the expanded root list and alias table",
	Long: `Print the resolver configuration after glob expansion: the ordered root
directory list, the alias table, and the extension probe order.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

// view is the JSON output shape.
type view struct {
	Roots      []string          `json:"roots"`
	Alias      map[string]string `json:"alias,omitempty"`
	Extensions []string          `json:"extensions"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	opts, err := cfg.ResolverOptions(filesystem, ".")
	if err != nil {
		return fmt.Errorf("error expanding roots: %w", err)
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(configView(opts), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		fmt.Print(renderText(opts))
	}
	return nil
}

// configView applies the resolver's extension defaulting to the options.
func configView(opts resolver.Options) view {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = resolver.DefaultExtensions
	}
	return view{Roots: opts.Roots, Alias: opts.Alias, Extensions: extensions}
}

// renderText renders the configuration for humans. Alias keys are sorted;
// the table itself has no ordering significance.
func renderText(opts resolver.Options) string {
	v := configView(opts)

	var b strings.Builder
	b.WriteString("roots:\n")
	if len(v.Roots) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, root := range v.Roots {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, root)
	}

	if len(v.Alias) > 0 {
		keys := make([]string, 0, len(v.Alias))
		for key := range v.Alias {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		b.WriteString("alias:\n")
		for _, key := range keys {
			fmt.Fprintf(&b, "  %s -> %s\n", key, v.Alias[key])
		}
	}

	fmt.Fprintf(&b, "extensions: %s\n", strings.Join(v.Extensions, ", "))
	return b.String()
}
