/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	remapfs "bennypowers.dev/remap/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "remap"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/remap.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error). JSON configs may carry
// comments; they are stripped before parsing.
func Load(filesystem remapfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, err
			}
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem remapfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandRoots expands glob patterns in Roots to concrete directories.
// Non-glob entries pass through unchanged, whether or not they exist;
// a missing root just never matches during probing. Expansion order is
// preserved: entries expand in place, each pattern's matches in walk order.
func (c *Config) ExpandRoots(filesystem remapfs.FileSystem, rootDir string) ([]string, error) {
	var result []string

	for _, pattern := range c.Roots {
		if !containsGlob(pattern) {
			result = append(result, pattern)
			continue
		}

		matches, err := expandGlob(filesystem, rootDir, pattern, true)
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}

	return result, nil
}

// ExpandFiles expands glob patterns in Files to concrete file paths.
func (c *Config) ExpandFiles(filesystem remapfs.FileSystem, rootDir string) ([]string, error) {
	return ExpandFileArgs(filesystem, rootDir, c.Files)
}

// ExpandFileArgs expands a list of file paths which may contain globs.
// Non-glob paths pass through unchanged.
func ExpandFileArgs(filesystem remapfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		if !containsGlob(pattern) {
			result = append(result, pattern)
			continue
		}

		matches, err := expandGlob(filesystem, rootDir, pattern, false)
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}

	return result, nil
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// expandGlob expands a glob pattern against the filesystem, collecting
// directories or files. doublestar handles both simple and ** globs.
func expandGlob(filesystem remapfs.FileSystem, rootDir, pattern string, wantDirs bool) ([]string, error) {
	if !filepath.IsAbs(pattern) && rootDir != "" && rootDir != "." {
		pattern = filepath.Join(rootDir, pattern)
	}

	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() != wantDirs {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
		if relPath == "" {
			return nil
		}

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}
