/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for specifier rewriting.
package config

import (
	"bennypowers.dev/remap/fs"
	"bennypowers.dev/remap/resolver"
)

// Config represents the rewriter configuration.
type Config struct {
	// Roots is the ordered list of virtual root directories. Entries may
	// contain glob syntax; search priority is list order, earlier wins.
	Roots []string `yaml:"roots" json:"roots"`

	// Alias maps specifier prefixes to replacement paths or package names.
	Alias map[string]string `yaml:"alias" json:"alias"`

	// Extensions is the ordered extension probe list.
	// Defaults to resolver.DefaultExtensions when empty.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// Files specifies source files to rewrite (supports globs). Used when
	// the rewrite command receives no file arguments.
	Files []string `yaml:"files" json:"files"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// ResolverOptions expands root glob patterns and builds resolver options.
// Expansion happens once here, before any resolution; the returned options
// are treated as frozen for the rest of the run.
func (c *Config) ResolverOptions(filesystem fs.FileSystem, rootDir string) (resolver.Options, error) {
	roots, err := c.ExpandRoots(filesystem, rootDir)
	if err != nil {
		return resolver.Options{}, err
	}
	return resolver.Options{
		Roots:      roots,
		Extensions: c.Extensions,
		Alias:      c.Alias,
	}, nil
}
