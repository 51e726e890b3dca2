/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/remap/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/remap.yaml", `
roots:
  - src
  - vendor/lib
alias:
  underscore: lodash
  awesome/components: ./src/components
extensions:
  - .js
  - .css
files:
  - src/**/*.js
`, 0644)

	cfg, err := Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"src", "vendor/lib"}, cfg.Roots)
	assert.Equal(t, "lodash", cfg.Alias["underscore"])
	assert.Equal(t, "./src/components", cfg.Alias["awesome/components"])
	assert.Equal(t, []string{".js", ".css"}, cfg.Extensions)
	assert.Equal(t, []string{"src/**/*.js"}, cfg.Files)
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/remap.json", `{
  // search roots, in priority order
  "roots": ["src"],
  "alias": {
    "abstract": "npm:concrete" /* legacy package alias */
  }
}`, 0644)

	cfg, err := Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"src"}, cfg.Roots)
	assert.Equal(t, "npm:concrete", cfg.Alias["abstract"])
}

func TestLoad_YAMLBeforeJSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/remap.yaml", "roots: [from-yaml]", 0644)
	mfs.AddFile(".config/remap.json", `{"roots": ["from-json"]}`, 0644)

	cfg, err := Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"from-yaml"}, cfg.Roots)
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(mapfs.New(), ".")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault(mapfs.New(), ".")
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Roots)
	assert.Empty(t, cfg.Alias)
}

func TestExpandRoots(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("packages/alpha/src", 0755)
	mfs.AddDir("packages/beta/src", 0755)
	mfs.AddDir("vendor", 0755)

	t.Run("non-glob passthrough", func(t *testing.T) {
		cfg := &Config{Roots: []string{"vendor", "does-not-exist"}}
		roots, err := cfg.ExpandRoots(mfs, ".")
		require.NoError(t, err)
		// missing roots pass through; they just never match a probe
		assert.Equal(t, []string{"vendor", "does-not-exist"}, roots)
	})

	t.Run("glob expands to directories in order", func(t *testing.T) {
		cfg := &Config{Roots: []string{"packages/*/src", "vendor"}}
		roots, err := cfg.ExpandRoots(mfs, ".")
		require.NoError(t, err)
		assert.Equal(t, []string{"packages/alpha/src", "packages/beta/src", "vendor"}, roots)
	})
}

func TestExpandFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/a.js", "", 0644)
	mfs.AddFile("src/deep/b.js", "", 0644)
	mfs.AddFile("src/deep/c.css", "", 0644)

	cfg := &Config{Files: []string{"src/**/*.js"}}
	files, err := cfg.ExpandFiles(mfs, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.js", "src/deep/b.js"}, files)
}

func TestResolverOptions(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("src", 0755)

	cfg := &Config{
		Roots: []string{"src"},
		Alias: map[string]string{"underscore": "lodash"},
	}

	opts, err := cfg.ResolverOptions(mfs, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, opts.Roots)
	assert.Equal(t, "lodash", opts.Alias["underscore"])
	assert.Empty(t, opts.Extensions)
}
