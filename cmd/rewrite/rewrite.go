/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rewrite provides the rewrite command for remap.
package rewrite

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/remap/config"
	"bennypowers.dev/remap/fs"
	"bennypowers.dev/remap/internal/logger"
	"bennypowers.dev/remap/resolver"
	"bennypowers.dev/remap/rewrite"
)

// Cmd is the rewrite cobra command.
var Cmd = &cobra.Command{
	Use:   "rewrite [files...]",
	Short: "Rewrite module specifiers in source files",
	Long: `Rewrite bare module specifiers in JavaScript and HTML sources into
loader-resolvable paths, using the roots and aliases from
.config/remap.{yaml,yml,json}.

Examples:
  # Rewrite files in place
  remap rewrite -i src/**/*.js

  # Preview a single file on stdout
  remap rewrite src/app/main.js

  # Override configured roots for one run
  remap rewrite -i --root src --root packages/*/src src/**/*.js

  # Use files from config (.config/remap.yaml)
  remap rewrite -i  # rewrites the config's files list`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("in-place", "i", false, "Overwrite input files with rewritten output")
	Cmd.Flags().StringArray("root", nil, "Root directory or glob pattern (repeatable, overrides config)")
	Cmd.Flags().StringArray("extension", nil, "Extension to probe, in order (repeatable, overrides config)")

	_ = viper.BindPFlag("roots", Cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("extensions", Cmd.Flags().Lookup("extension"))
}

func run(cmd *cobra.Command, args []string) error {
	inPlace, _ := cmd.Flags().GetBool("in-place")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	// Flags win over config file values
	if roots := viper.GetStringSlice("roots"); len(roots) > 0 {
		cfg.Roots = roots
	}
	if extensions := viper.GetStringSlice("extensions"); len(extensions) > 0 {
		cfg.Extensions = extensions
	}

	// One-time glob expansion; the resolver config is frozen from here on
	opts, err := cfg.ResolverOptions(filesystem, ".")
	if err != nil {
		return fmt.Errorf("error expanding roots: %w", err)
	}

	var files []string
	if len(args) > 0 {
		files, err = config.ExpandFileArgs(filesystem, ".", args)
	} else {
		files, err = cfg.ExpandFiles(filesystem, ".")
	}
	if err != nil {
		return fmt.Errorf("error expanding files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	rewriter, err := rewrite.New(resolver.New(filesystem, opts))
	if err != nil {
		return err
	}
	defer rewriter.Close()

	var failures, changedCount int
	for _, file := range files {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			logger.Warn("error reading %s: %v", file, err)
			failures++
			continue
		}

		out, changed, err := rewriter.Rewrite(file, data)
		if err != nil {
			logger.Warn("error rewriting %s: %v", file, err)
			failures++
			continue
		}

		if inPlace {
			if !changed {
				continue
			}
			info, err := filesystem.Stat(file)
			if err != nil {
				logger.Warn("error writing %s: %v", file, err)
				failures++
				continue
			}
			if err := filesystem.WriteFile(file, out, info.Mode().Perm()); err != nil {
				logger.Warn("error writing %s: %v", file, err)
				failures++
				continue
			}
			changedCount++
		} else {
			fmt.Fprint(os.Stdout, string(out))
			if changed {
				changedCount++
			}
		}
	}

	if inPlace {
		logger.Info("rewrote %d of %d file(s)", changedCount, len(files))
	}
	if failures > 0 {
		return fmt.Errorf("%d file(s) failed", failures)
	}
	return nil
}
